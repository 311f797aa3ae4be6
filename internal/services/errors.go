package services

import (
	"errors"
	"fmt"
)

// Error kinds returned to API clients. Stable identifiers, not prose.
const (
	KindValidation = "validation_error"
	KindNotFound   = "not_found"
	KindConflict   = "conflict"
	KindInternal   = "internal_error"
)

// ValidationError reports malformed or out-of-range input. The field name
// points at the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NotFoundError reports an unknown invoice or patient.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError reports an operation that is illegal in the invoice's
// current state: overpayment, mutation of a terminal invoice, or
// cancellation with recorded payments.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Kind classifies an error for transport mapping. Anything unrecognized is
// internal; its details are logged, never returned.
func Kind(err error) string {
	var ve *ValidationError
	var nf *NotFoundError
	var ce *ConflictError
	switch {
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &nf):
		return KindNotFound
	case errors.As(err, &ce):
		return KindConflict
	default:
		return KindInternal
	}
}
