// Package services holds the storefront's business rules: cart and favorites
// reconciliation, order creation, authentication and the catalog.
package services

import "errors"

// Error kinds. Controllers map them to HTTP statuses with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Error is a failure that is safe to show to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func validationError(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

func notFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func conflictError(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func unauthenticatedError(message string) error {
	return &Error{Kind: ErrUnauthenticated, Message: message}
}

// ErrorMessage returns the client-facing message of err, or "" when err is internal.
func ErrorMessage(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return ""
}
