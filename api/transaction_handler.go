package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	"github.com/uptrace/bunrouter"
)

// TransactionHandler serves the activity feed endpoints.
type TransactionHandler struct {
	transactions interfaces.TransactionService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(transactions interfaces.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type createTransactionRequest struct {
	UserID          string  `json:"userId"`
	MicroAppID      *string `json:"microAppId"`
	Description     string  `json:"description"`
	Amount          string  `json:"amount"`
	Status          string  `json:"status"`
	TransactionHash *string `json:"transactionHash"`
}

// CreateTransaction appends a transaction to the feed.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, req bunrouter.Request) error {
	var body createTransactionRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	tx, err := h.transactions.CreateTransaction(req.Context(), entities.NewTransaction{
		UserID:          body.UserID,
		MicroAppID:      body.MicroAppID,
		Description:     body.Description,
		Amount:          body.Amount,
		Status:          body.Status,
		TransactionHash: body.TransactionHash,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return writeJSON(w, http.StatusCreated, tx)
}

// RecentTransactions returns the newest transactions across all users. An
// optional limit query parameter caps the result.
func (h *TransactionHandler) RecentTransactions(w http.ResponseWriter, req bunrouter.Request) error {
	limit := 0
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return badRequest(w, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	txs, err := h.transactions.RecentTransactions(req.Context(), limit)
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, txs)
}

// UserTransactions returns a user's transactions, newest first.
func (h *TransactionHandler) UserTransactions(w http.ResponseWriter, req bunrouter.Request) error {
	txs, err := h.transactions.UserTransactions(req.Context(), req.Param("id"))
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, txs)
}
