// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}

// Kind classifies a service-layer error so the HTTP boundary can map it to a
// status code without string matching.
type Kind int

const (
	// KindValidation: malformed or missing required input (future-dated
	// occurrence, blank required field).
	KindValidation Kind = iota
	// KindReferenceNotFound: a foreign id (cidade, atividade, tipo de
	// ocorrência, incidente, propriedade referenced by another entity) does
	// not resolve. Distinct from KindNotFound on the addressed entity.
	KindReferenceNotFound
	// KindNotFound: the primary addressed entity does not exist.
	KindNotFound
	// KindForbidden: authenticated principal lacks role or ownership.
	KindForbidden
	// KindUnauthorized: missing/invalid/expired bearer token.
	KindUnauthorized
	// KindConflict: duplicate unique field (e-mail, nome).
	KindConflict
	// KindStorage: filesystem I/O failure while storing a photo.
	KindStorage
)

// Error is the typed error raised by services and mapped once at the handler
// boundary. Msg is always safe to show to clients; Err carries the internal
// cause for logging.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error        { return &Error{Kind: KindValidation, Msg: msg} }
func ReferenceNotFound(msg string) *Error { return &Error{Kind: KindReferenceNotFound, Msg: msg} }
func NotFound(msg string) *Error          { return &Error{Kind: KindNotFound, Msg: msg} }
func Forbidden(msg string) *Error         { return &Error{Kind: KindForbidden, Msg: msg} }
func Unauthorized(msg string) *Error      { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Conflict(msg string) *Error          { return &Error{Kind: KindConflict, Msg: msg} }
func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

// Status returns the HTTP status code for err. Unclassified errors map to 500
// so that internal details never decide the response shape.
func Status(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation, KindReferenceNotFound:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
