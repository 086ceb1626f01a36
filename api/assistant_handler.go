package api

import (
	"encoding/json"
	"net/http"

	"workbindr/domain/interfaces"

	"github.com/uptrace/bunrouter"
)

// AssistantHandler serves the AI collaborator endpoints.
type AssistantHandler struct {
	assistant interfaces.AssistantService
}

// NewAssistantHandler creates a new assistant handler.
func NewAssistantHandler(assistant interfaces.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

type chatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type chatResponse struct {
	MessageID string `json:"messageId"`
	Response  string `json:"response"`
}

// Chat sends the user's message to the model and returns the reply.
func (h *AssistantHandler) Chat(w http.ResponseWriter, req bunrouter.Request) error {
	var body chatRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	msg, err := h.assistant.Chat(req.Context(), body.UserID, body.Message)
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, chatResponse{MessageID: msg.ID, Response: msg.Response})
}

// History returns a user's exchanges in conversation order.
func (h *AssistantHandler) History(w http.ResponseWriter, req bunrouter.Request) error {
	messages, err := h.assistant.History(req.Context(), req.Param("id"))
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, messages)
}
