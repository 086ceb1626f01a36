package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"workbindr/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bunrouter"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "validation failure",
			err:      entities.NewValidationError("name", "is required"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "missing record",
			err:      fmt.Errorf("user x: %w", entities.ErrNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "repeat vote",
			err:      fmt.Errorf("voter y on proposal z: %w", entities.ErrAlreadyVoted),
			expected: http.StatusConflict,
		},
		{
			name:     "unreachable backend",
			err:      fmt.Errorf("failed to get user x: %w", entities.ErrBackendUnavailable),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "unexpected failure",
			err:      fmt.Errorf("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := bunrouter.Request{Request: httptest.NewRequest(http.MethodGet, "/api/users/x", nil)}

			require.NoError(t, handleError(rec, req, tt.err))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
