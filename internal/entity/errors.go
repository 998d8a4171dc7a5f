package entity

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindUnknownDisease   ErrorKind = "UNKNOWN_DISEASE"
	KindUnknownLocation  ErrorKind = "UNKNOWN_LOCATION"
	KindInvalidBudget    ErrorKind = "INVALID_BUDGET"
	KindStoreUnavailable ErrorKind = "STORE_UNAVAILABLE"
	KindStoreRejected    ErrorKind = "STORE_REJECTED"
	KindSessionNotFound  ErrorKind = "SESSION_NOT_FOUND"
	KindValidation       ErrorKind = "VALIDATION_FAILED"
)

// AppError carries a kind so callers can tell bad input from a failing
// backend without matching on message text.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same kind, so errors.Is(err, ErrUnknownDisease)
// works regardless of message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind
}

var (
	ErrUnknownDisease   = &AppError{Kind: KindUnknownDisease}
	ErrUnknownLocation  = &AppError{Kind: KindUnknownLocation}
	ErrInvalidBudget    = &AppError{Kind: KindInvalidBudget}
	ErrStoreUnavailable = &AppError{Kind: KindStoreUnavailable}
	ErrStoreRejected    = &AppError{Kind: KindStoreRejected}
	ErrSessionNotFound  = &AppError{Kind: KindSessionNotFound}
	ErrValidation       = &AppError{Kind: KindValidation}
)

func NewError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or "" when
// there is none.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
