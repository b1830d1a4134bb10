// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation signals one or more field-level violations on a request.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidArgument signals failed input validation on a single argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrWorkItemNotFound signals missing work item.
	ErrWorkItemNotFound = errors.New("work item not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrDomainRule signals a broken aggregate invariant.
	ErrDomainRule = errors.New("domain rule violated")
	// ErrConflict signals an operation blocked by current aggregate state.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized signals a requester without report access.
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldViolation describes a single failed rule on a request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule of a request at once.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewDomainError wraps ErrDomainRule with an invariant message.
func NewDomainError(msg string) error {
	return fmt.Errorf("%w: %s", ErrDomainRule, msg)
}

// NewConflictError wraps ErrConflict with a precondition message.
func NewConflictError(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}
