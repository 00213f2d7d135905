// Package kinderr normalizes heterogeneous application errors into one
// canonical, serializable shape.
//
// Applications define a small set of [Kind] values (a name, a message ID,
// an HTTP-status-like code, and a description), then define concrete error
// types implementing [AsError] against those kinds. At a boundary (API
// response, log line, RPC status) the concrete error is converted once into
// the canonical [Error] via [From] or [Normalize], and only the canonical
// shape crosses the boundary.
package kinderr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

// AsError is the contract a concrete error type implements to participate
// in normalization. Kind is a property of the variant: every instance of a
// type returns the same Kind. Class conventionally encodes
// "{side}::{kind-name}::{concrete-type-name}".
//
// Use [From] to collapse any AsError value into the canonical [*Error].
type AsError interface {
	error
	Kind() Kind
	Class() string
	Message() string
	Details() Details
}

// compile-time checks
var (
	_ AsError = (*Error)(nil)
	_ AsError = Base{}
)

// Error is the canonical error value every AsError type converts into.
// It carries the kind for in-process logic (display, status mapping), but
// the kind is never serialized: the wire shape is exactly class, message,
// and details.
type Error struct {
	kind    Kind
	class   string
	message string
	details Details
}

// From converts any AsError value into the canonical Error.
// Fields are copied as-is; the conversion cannot fail.
func From(v AsError) *Error {
	return &Error{
		kind:    v.Kind(),
		class:   v.Class(),
		message: v.Message(),
		details: v.Details(),
	}
}

// New constructs a canonical Error directly. Most code should define an
// AsError type and convert it via [From]; New exists for boundaries that
// rebuild an Error from wire data (e.g. an HTTP response or RPC status).
func New(kind Kind, class, message string, details Details) *Error {
	return &Error{
		kind:    kind,
		class:   class,
		message: message,
		details: details.Clone(),
	}
}

// Default returns the canonical internal-server-error value: kind
// InternalServerError (code 500, message ID "MSG000"), class
// "Server::InternalServerError::Error", message "Internal Server Error",
// and no details.
func Default() *Error {
	return &Error{
		kind:    InternalServerError,
		class:   "Server::InternalServerError::Error",
		message: "Internal Server Error",
	}
}

// Normalize converts an arbitrary error into the canonical Error:
//   - nil returns nil;
//   - a *Error is cloned;
//   - an AsError anywhere in the chain is converted via From;
//   - anything else becomes Default with the error text as message.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Clone()
	}
	var as AsError
	if errors.As(err, &as) {
		return From(as)
	}
	return Default().WithMessage(err.Error())
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind { return e.kind }

// Class returns the error's classification string.
func (e *Error) Class() string { return e.class }

// Message returns the error's message.
func (e *Error) Message() string { return e.message }

// Details returns a copy of the error's details, or nil if there are none.
func (e *Error) Details() Details { return e.details.Clone() }

// Error implements the error interface using the canonical display format:
//
//	[{message_id}] {class} ({code}) - {message}
//
// This exact shape is a compatibility contract; downstream log tooling may
// parse it.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s (%d) - %s", e.kind.MessageID(), e.class, e.kind.Code(), e.message)
}

// Clone returns a copy of the error. Details are copied shallowly.
func (e *Error) Clone() *Error {
	cp := *e
	cp.details = e.details.Clone()
	return &cp
}

// WithKind returns a copy of the error with the given kind.
// Useful after deserialization, which cannot restore the kind.
func (e *Error) WithKind(k Kind) *Error {
	cp := *e
	cp.kind = k
	return &cp
}

// WithMessage returns a copy of the error with the message replaced.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.message = msg
	return &cp
}

// WithDetails returns a copy of the error with the details replaced.
func (e *Error) WithDetails(d Details) *Error {
	cp := *e
	cp.details = d.Clone()
	return &cp
}

// WithDetail returns a copy of the error with a single detail key set.
func (e *Error) WithDetail(key string, value any) *Error {
	cp := *e
	cp.details = e.details.With(key, value)
	return &cp
}

// IOError converts the error into a generic invalid-data I/O error.
// The result matches errors.Is(err, fs.ErrInvalid) and its text is exactly
// the canonical display string. The conversion is one-way: kind and code
// are not recoverable from the result.
func (e *Error) IOError() error {
	return &ioError{msg: e.Error()}
}

type ioError struct {
	msg string
}

func (e *ioError) Error() string { return e.msg }

func (e *ioError) Unwrap() error { return fs.ErrInvalid }

// errorJSON is the wire shape of Error: kind is deliberately excluded.
type errorJSON struct {
	Class   string  `json:"class"`
	Message string  `json:"message"`
	Details Details `json:"details,omitempty"`
}

// MarshalJSON serializes the error as class, message, and details.
// The kind never appears on the wire; details keys serialize in sorted
// order (encoding/json map behavior), so output is deterministic.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{
		Class:   e.class,
		Message: e.message,
		Details: e.details,
	})
}

// UnmarshalJSON restores class, message, and details. The wire carries no
// kind, so the kind defaults to InternalServerError; use [Error.WithKind]
// to re-bind one from external context (e.g. an HTTP status).
func (e *Error) UnmarshalJSON(b []byte) error {
	var w errorJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	e.kind = InternalServerError
	e.class = w.Class
	e.message = w.Message
	e.details = w.Details
	return nil
}
