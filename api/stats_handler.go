package api

import (
	"encoding/json"
	"net/http"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	"github.com/uptrace/bunrouter"
)

// StatsHandler serves the dashboard aggregate row.
type StatsHandler struct {
	stats interfaces.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(stats interfaces.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetPlatformStats returns the stats row.
func (h *StatsHandler) GetPlatformStats(w http.ResponseWriter, req bunrouter.Request) error {
	stats, err := h.stats.PlatformStats(req.Context())
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, stats)
}

type updateStatsRequest struct {
	ActiveMicroApps   *int `json:"activeMicroApps"`
	TransactionsToday *int `json:"transactionsToday"`
	DataNodes         *int `json:"dataNodes"`
	Contributors      *int `json:"contributors"`
}

// UpdatePlatformStats merges a partial update over the stats row.
func (h *StatsHandler) UpdatePlatformStats(w http.ResponseWriter, req bunrouter.Request) error {
	var body updateStatsRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	stats, err := h.stats.UpdatePlatformStats(req.Context(), entities.PlatformStatsUpdate{
		ActiveMicroApps:   body.ActiveMicroApps,
		TransactionsToday: body.TransactionsToday,
		DataNodes:         body.DataNodes,
		Contributors:      body.Contributors,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, stats)
}
