package api

import (
	"encoding/json"
	"net/http"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	"github.com/uptrace/bunrouter"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	users interfaces.UserService
	store interfaces.Store
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users interfaces.UserService, store interfaces.Store) *UserHandler {
	return &UserHandler{users: users, store: store}
}

// GetUser returns a user by id.
func (h *UserHandler) GetUser(w http.ResponseWriter, req bunrouter.Request) error {
	user, err := h.users.GetUser(req.Context(), req.Param("id"))
	if err != nil {
		return handleError(w, req, err)
	}
	if user == nil {
		return notFound(w)
	}
	return bunrouter.JSON(w, user)
}

type createUserRequest struct {
	DisplayName     string  `json:"displayName"`
	Email           string  `json:"email"`
	WalletAddress   *string `json:"walletAddress"`
	ReputationScore float64 `json:"reputationScore"`
}

// CreateUser creates a user from explicit fields.
func (h *UserHandler) CreateUser(w http.ResponseWriter, req bunrouter.Request) error {
	var body createUserRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	user, err := h.users.CreateUser(req.Context(), body.DisplayName, body.Email, body.WalletAddress, body.ReputationScore)
	if err != nil {
		return handleError(w, req, err)
	}
	return writeJSON(w, http.StatusCreated, user)
}

type authCallbackRequest struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	DisplayName     string  `json:"displayName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// AuthCallback reconciles the identity delivered by the auth layer: first
// login inserts, later logins refresh profile fields.
func (h *UserHandler) AuthCallback(w http.ResponseWriter, req bunrouter.Request) error {
	var body authCallbackRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}
	if body.ID == "" || body.Email == "" {
		return badRequest(w, "id and email are required")
	}

	user, err := h.users.ReconcileIdentity(req.Context(), entities.UserIdentity{
		ID:              body.ID,
		Email:           body.Email,
		DisplayName:     body.DisplayName,
		ProfileImageURL: body.ProfileImageURL,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, user)
}

type updateUserRequest struct {
	DisplayName     *string  `json:"displayName"`
	WalletAddress   *string  `json:"walletAddress"`
	ProfileImageURL *string  `json:"profileImageUrl"`
	ReputationScore *float64 `json:"reputationScore"`
}

// UpdateUser merges a partial update over an existing user.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, req bunrouter.Request) error {
	var body updateUserRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	user, err := h.store.Users().Update(req.Context(), req.Param("id"), entities.UserUpdate{
		DisplayName:     body.DisplayName,
		WalletAddress:   body.WalletAddress,
		ProfileImageURL: body.ProfileImageURL,
		ReputationScore: body.ReputationScore,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, user)
}
