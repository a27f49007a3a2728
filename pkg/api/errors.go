package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/services"
)

// Machine-readable reason codes carried in every error body. Clients
// branch on these, not on the human-readable message.
const (
	reasonValidationFailed  = "validation_failed"
	reasonPermissionDenied  = "permission_denied"
	reasonNotFound          = "not_found"
	reasonIllegalTransition = "illegal_transition"
	reasonConflict          = "conflict"
	reasonLockHeld          = "lock_held"
	reasonUnavailable       = "storage_unavailable"
	reasonInternal          = "internal"
)

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
	Field  string `json:"field,omitempty"`
}

// mapServiceError translates a service-layer error into an HTTP status
// and body. Transient storage errors that survived the retry policy
// surface as 503 so callers know to back off and retry.
func mapServiceError(err error) (int, ErrorResponse) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, ErrorResponse{
			Error:  validErr.Message,
			Reason: reasonValidationFailed,
			Field:  validErr.Field,
		}
	}
	var permErr *services.PermissionError
	if errors.As(err, &permErr) {
		return http.StatusForbidden, ErrorResponse{Error: permErr.Error(), Reason: reasonPermissionDenied}
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found", Reason: reasonNotFound}
	}
	if errors.Is(err, services.ErrIllegalTransition) {
		return http.StatusConflict, ErrorResponse{Error: "illegal state transition", Reason: reasonIllegalTransition}
	}
	if errors.Is(err, services.ErrLockHeld) {
		return http.StatusConflict, ErrorResponse{Error: "lock is held by another agent", Reason: reasonLockHeld}
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, ErrorResponse{Error: "resource already exists", Reason: reasonConflict}
	}
	if database.IsTransient(err) {
		return http.StatusServiceUnavailable, ErrorResponse{Error: "storage temporarily unavailable", Reason: reasonUnavailable}
	}

	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Reason: reasonInternal}
}

// respondError writes the mapped error and aborts the handler chain.
func respondError(c *gin.Context, err error) {
	status, body := mapServiceError(err)
	c.AbortWithStatusJSON(status, body)
}
