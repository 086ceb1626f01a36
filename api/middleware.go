package api

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uptrace/bunrouter"
)

// requestLogger logs one line per handled request.
func requestLogger(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		start := time.Now()
		err := next(w, req)

		entry := log.WithFields(log.Fields{
			"method":   req.Method,
			"path":     req.URL.Path,
			"duration": time.Since(start),
		})
		if err != nil {
			entry.WithError(err).Warn("Request errored")
		} else {
			entry.Debug("Request handled")
		}
		return err
	}
}
