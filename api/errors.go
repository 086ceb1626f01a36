package api

import (
	"errors"
	"net/http"

	"workbindr/domain/entities"

	log "github.com/sirupsen/logrus"
	"github.com/uptrace/bunrouter"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// handleError maps domain errors onto HTTP statuses. Anything unrecognized
// is a 500 and gets logged; the mapped cases are expected outcomes and are not.
func handleError(w http.ResponseWriter, req bunrouter.Request, err error) error {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		return writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: ve.Fields})
	case errors.Is(err, entities.ErrNotFound):
		return writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, entities.ErrAlreadyVoted):
		return writeJSON(w, http.StatusConflict, errorResponse{Error: "already voted"})
	case errors.Is(err, entities.ErrBackendUnavailable):
		return writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "storage unavailable"})
	default:
		log.WithFields(log.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).WithError(err).Error("Request failed")
		return writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, value any) error {
	w.WriteHeader(status)
	return bunrouter.JSON(w, value)
}

func notFound(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

func badRequest(w http.ResponseWriter, msg string) error {
	return writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
