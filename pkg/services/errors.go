package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrIllegalTransition is returned when a status change violates the
	// task state machine
	ErrIllegalTransition = errors.New("illegal state transition")

	// ErrLockHeld is returned when acquiring a resource lock whose name
	// already has an unreleased holder
	ErrLockHeld = errors.New("resource lock already held")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PermissionError marks a privileged operation invoked by the wrong agent type
type PermissionError struct {
	AgentID   string
	Operation string
	Reason    string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("agent '%s' may not %s: %s", e.AgentID, e.Operation, e.Reason)
}

// NewPermissionError creates a new permission error
func NewPermissionError(agentID, operation, reason string) error {
	return &PermissionError{
		AgentID:   agentID,
		Operation: operation,
		Reason:    reason,
	}
}

// IsPermissionError checks if an error is a permission error
func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
