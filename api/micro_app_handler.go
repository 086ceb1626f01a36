package api

import (
	"encoding/json"
	"net/http"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	"github.com/uptrace/bunrouter"
)

// MicroAppHandler serves the marketplace endpoints.
type MicroAppHandler struct {
	store interfaces.Store
}

// NewMicroAppHandler creates a new micro-app handler.
func NewMicroAppHandler(store interfaces.Store) *MicroAppHandler {
	return &MicroAppHandler{store: store}
}

// ListMicroApps returns all micro-apps.
func (h *MicroAppHandler) ListMicroApps(w http.ResponseWriter, req bunrouter.Request) error {
	apps, err := h.store.MicroApps().List(req.Context())
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, apps)
}

// GetMicroApp returns a micro-app by id.
func (h *MicroAppHandler) GetMicroApp(w http.ResponseWriter, req bunrouter.Request) error {
	app, err := h.store.MicroApps().GetByID(req.Context(), req.Param("id"))
	if err != nil {
		return handleError(w, req, err)
	}
	if app == nil {
		return notFound(w)
	}
	return bunrouter.JSON(w, app)
}

type createMicroAppRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Version      string `json:"version"`
	APISchema    string `json:"apiSchema"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	IsActive     *bool  `json:"isActive"`
	PricePerCall string `json:"pricePerCall"`
}

// CreateMicroApp validates and creates a micro-app. Omitted optional fields
// get defaults: active, zero counters.
func (h *MicroAppHandler) CreateMicroApp(w http.ResponseWriter, req bunrouter.Request) error {
	var body createMicroAppRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	input := entities.NewMicroApp{
		Name:         body.Name,
		Description:  body.Description,
		Version:      body.Version,
		APISchema:    body.APISchema,
		Icon:         body.Icon,
		Color:        body.Color,
		IsActive:     body.IsActive,
		PricePerCall: body.PricePerCall,
	}
	if err := input.Validate(); err != nil {
		return handleError(w, req, err)
	}

	app := &entities.MicroApp{
		Name:         input.Name,
		Description:  input.Description,
		Version:      input.Version,
		APISchema:    input.APISchema,
		Icon:         input.Icon,
		Color:        input.Color,
		IsActive:     true,
		PricePerCall: input.PricePerCall,
	}
	if input.IsActive != nil {
		app.IsActive = *input.IsActive
	}
	if app.PricePerCall == "" {
		app.PricePerCall = "0"
	}

	if err := h.store.MicroApps().Create(req.Context(), app); err != nil {
		return handleError(w, req, err)
	}
	return writeJSON(w, http.StatusCreated, app)
}
