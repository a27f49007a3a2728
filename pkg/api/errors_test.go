package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/droverhq/drover/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectReason string
	}{
		{
			name:         "validation error maps to 400",
			err:          services.NewValidationError("phase_id", "required"),
			expectStatus: http.StatusBadRequest,
			expectReason: reasonValidationFailed,
		},
		{
			name:         "permission error maps to 403",
			err:          services.NewPermissionError("agent-1", "release lock", "held by agent-2"),
			expectStatus: http.StatusForbidden,
			expectReason: reasonPermissionDenied,
		},
		{
			name:         "not found maps to 404",
			err:          fmt.Errorf("loading row: %w", services.ErrNotFound),
			expectStatus: http.StatusNotFound,
			expectReason: reasonNotFound,
		},
		{
			name:         "illegal transition maps to 409",
			err:          services.ErrIllegalTransition,
			expectStatus: http.StatusConflict,
			expectReason: reasonIllegalTransition,
		},
		{
			name:         "held lock maps to 409",
			err:          services.ErrLockHeld,
			expectStatus: http.StatusConflict,
			expectReason: reasonLockHeld,
		},
		{
			name:         "already exists maps to 409",
			err:          fmt.Errorf("insert: %w", services.ErrAlreadyExists),
			expectStatus: http.StatusConflict,
			expectReason: reasonConflict,
		},
		{
			name:         "exhausted transient error maps to 503",
			err:          fmt.Errorf("enqueue: retries exhausted: %w", &pgconn.PgError{Code: "40001"}),
			expectStatus: http.StatusServiceUnavailable,
			expectReason: reasonUnavailable,
		},
		{
			name:         "unknown error maps to 500",
			err:          errors.New("boom"),
			expectStatus: http.StatusInternalServerError,
			expectReason: reasonInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapServiceError(tt.err)
			assert.Equal(t, tt.expectStatus, status)
			assert.Equal(t, tt.expectReason, body.Reason)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestMapServiceErrorValidationField(t *testing.T) {
	status, body := mapServiceError(services.NewValidationError("description", "required"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "description", body.Field)
	assert.Equal(t, "required", body.Error)
}

func TestRespondErrorAborts(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, services.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, c.IsAborted())
	body := decode[ErrorResponse](t, rec)
	assert.Equal(t, reasonNotFound, body.Reason)
}
