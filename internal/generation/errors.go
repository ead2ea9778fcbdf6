package generation

import (
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// ErrorKind classifies why a generation call failed.
type ErrorKind string

const (
	KindEmptyResponse     ErrorKind = "EMPTY_RESPONSE"
	KindMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
	KindTransportError    ErrorKind = "TRANSPORT_ERROR"
)

var (
	ErrEmptyResponse     = errors.New("empty response")
	ErrMalformedResponse = errors.New("malformed response")
	ErrTransport         = errors.New("transport error")
)

// Error is returned for every failed Generate call. It names the message kind
// that was being generated and wraps the underlying cause, if any.
type Error struct {
	Kind        ErrorKind
	MessageKind entity.MessageKind
	Err         error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to generate %s: %s", e.MessageKind, e.Kind)
	}
	return fmt.Sprintf("failed to generate %s: %s: %v", e.MessageKind, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets callers match on the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrEmptyResponse:
		return e.Kind == KindEmptyResponse
	case ErrMalformedResponse:
		return e.Kind == KindMalformedResponse
	case ErrTransport:
		return e.Kind == KindTransportError
	}
	return false
}

// KindOf returns the kind of a generation error, or "" if err is not one.
func KindOf(err error) ErrorKind {
	var gErr *Error
	if errors.As(err, &gErr) {
		return gErr.Kind
	}
	return ""
}
