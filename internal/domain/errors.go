// Package domain holds the error kinds shared by all domain packages.
// Handlers map each kind to an HTTP status; services and repositories
// return them instead of framework-specific errors.
package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error for transport mapping.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindInternal     Kind = "internal"
)

// Machine-readable reasons for conflict and validation errors, so callers
// can distinguish sub-kinds without parsing messages.
const (
	ReasonRoomUnavailable  = "room_unavailable"
	ReasonAlreadyCancelled = "already_cancelled"
	ReasonBookingStarted   = "booking_started"
	ReasonDateRange        = "date_range"
	ReasonMissingUser      = "missing_user"
	ReasonStateTransition  = "invalid_state_transition"
	ReasonVersionConflict  = "version_conflict"
	ReasonEmailTaken       = "email_taken"
)

// Error is the single error type crossing domain boundaries.
type Error struct {
	Kind    Kind
	Reason  string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFoundError reports that an entity with the given id does not exist.
func NewNotFoundError(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Reason:  "not_found",
		Message: fmt.Sprintf("%s not found: %s", entity, id),
	}
}

// NewConflictError reports a state conflict with a machine-readable reason.
func NewConflictError(reason, message string) *Error {
	return &Error{Kind: KindConflict, Reason: reason, Message: message}
}

// NewValidationError reports invalid input with a machine-readable reason.
func NewValidationError(reason, message string) *Error {
	return &Error{Kind: KindValidation, Reason: reason, Message: message}
}

// NewInvalidStateError reports an illegal status transition.
func NewInvalidStateError(from, to string) *Error {
	return &Error{
		Kind:    KindConflict,
		Reason:  ReasonStateTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
	}
}

// NewUnauthorizedError reports a missing or invalid identity.
func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Reason: "unauthorized", Message: message}
}

// NewForbiddenError reports an identity lacking permission for an operation.
func NewForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Reason: "forbidden", Message: message}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(message string) *Error {
	return &Error{Kind: KindInternal, Reason: "internal", Message: message}
}

func kindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

// IsConflict reports whether err is a conflict domain error.
func IsConflict(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindConflict
}

// IsValidation reports whether err is a validation domain error.
func IsValidation(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindValidation
}

// ReasonOf returns the machine-readable reason of a domain error,
// or the empty string for any other error.
func ReasonOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}
