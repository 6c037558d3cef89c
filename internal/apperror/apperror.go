package apperror

import (
	"errors"
	"fmt"
)

// Kind is the stable machine-readable failure category surfaced to callers.
type Kind string

const (
	KindValidation        Kind = "VALIDATION_ERROR"
	KindNotFound          Kind = "NOT_FOUND"
	KindGateway           Kind = "GATEWAY_ERROR"
	KindMalformedResponse Kind = "MALFORMED_AI_RESPONSE"
	KindStore             Kind = "STORE_ERROR"
)

// AppError carries a kind, a human-readable message, and the wrapped cause.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Gateway(message string, cause error) *AppError {
	return &AppError{Kind: KindGateway, Message: message, Cause: cause}
}

func MalformedResponse(message string, cause error) *AppError {
	return &AppError{Kind: KindMalformedResponse, Message: message, Cause: cause}
}

func Store(message string, cause error) *AppError {
	return &AppError{Kind: KindStore, Message: message, Cause: cause}
}

// IsKind reports whether err (or anything it wraps) is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or KindStore when err is not an AppError.
// Unclassified errors reaching the boundary are persistence/infrastructure
// failures by definition, everything else is wrapped at its source.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}
