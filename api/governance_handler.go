package api

import (
	"encoding/json"
	"net/http"
	"time"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	"github.com/uptrace/bunrouter"
)

// GovernanceHandler serves proposal and voting endpoints.
type GovernanceHandler struct {
	governance interfaces.GovernanceService
}

// NewGovernanceHandler creates a new governance handler.
func NewGovernanceHandler(governance interfaces.GovernanceService) *GovernanceHandler {
	return &GovernanceHandler{governance: governance}
}

// ListProposals returns all proposals, newest first.
func (h *GovernanceHandler) ListProposals(w http.ResponseWriter, req bunrouter.Request) error {
	proposals, err := h.governance.ListProposals(req.Context())
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, proposals)
}

// GetProposal returns a proposal by id.
func (h *GovernanceHandler) GetProposal(w http.ResponseWriter, req bunrouter.Request) error {
	proposal, err := h.governance.GetProposal(req.Context(), req.Param("id"))
	if err != nil {
		return handleError(w, req, err)
	}
	if proposal == nil {
		return notFound(w)
	}
	return bunrouter.JSON(w, proposal)
}

type createProposalRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Proposer    string    `json:"proposer"`
	EndDate     time.Time `json:"endDate"`
}

// CreateProposal creates a proposal with zeroed tallies.
func (h *GovernanceHandler) CreateProposal(w http.ResponseWriter, req bunrouter.Request) error {
	var body createProposalRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	proposal, err := h.governance.CreateProposal(req.Context(), entities.NewGovernanceProposal{
		Title:       body.Title,
		Description: body.Description,
		Proposer:    body.Proposer,
		EndDate:     body.EndDate,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return writeJSON(w, http.StatusCreated, proposal)
}

type castVoteRequest struct {
	VoterID   string `json:"voterId"`
	Direction string `json:"direction"`
}

// CastVote applies the voter's reputation-weighted vote to the proposal.
func (h *GovernanceHandler) CastVote(w http.ResponseWriter, req bunrouter.Request) error {
	var body castVoteRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}
	if body.VoterID == "" {
		return badRequest(w, "voterId is required")
	}

	proposal, err := h.governance.CastVote(req.Context(), req.Param("id"), body.VoterID, entities.VoteDirection(body.Direction))
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, proposal)
}
