package api

import (
	"encoding/json"
	"net/http"

	"workbindr/domain/interfaces"

	"github.com/uptrace/bunrouter"
)

// SettingsHandler serves per-user developer settings.
type SettingsHandler struct {
	settings interfaces.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settings interfaces.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings returns a user's settings, defaults when never written.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, req bunrouter.Request) error {
	settings, err := h.settings.GetSettings(req.Context(), req.Param("id"))
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, settings)
}

type updateSettingsRequest struct {
	PreferredLLM string `json:"preferredLlm"`
}

// UpdateSettings upserts a user's preferred LLM.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, req bunrouter.Request) error {
	var body updateSettingsRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	settings, err := h.settings.UpdateSettings(req.Context(), req.Param("id"), body.PreferredLLM)
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, settings)
}
