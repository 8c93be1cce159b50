package tycoon

import (
	"errors"
	"fmt"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/protocol"
)

var (
	ErrUnsupportedContentType = protocol.ErrUnsupportedContentType
	ErrTransport              = errors.New("rpc transport error")
	ErrMissingField           = errors.New("missing result field")
)

type UnsupportedContentTypeError = protocol.UnsupportedContentTypeError

// TransportError reports a call that did not come back with HTTP 200. Status
// is 0 when no response arrived at all (timeout, refused connection) and Err
// holds the cause.
type TransportError struct {
	Method string
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("rpc %s: %v", e.Method, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("rpc %s: status %d", e.Method, e.Status)
	}
	return fmt.Sprintf("rpc %s: status %d: %s", e.Method, e.Status, e.Body)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a result that lacked a field the caller needed.
type MissingFieldError struct {
	Method string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("rpc %s: result has no %q field", e.Method, e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
