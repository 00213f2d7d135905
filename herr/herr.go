package herr

import (
	"encoding/json"
	"net/http"

	"github.com/mickamy/kinderr"
)

// StatusOfKind maps a kind to an HTTP status code. Kind codes are
// HTTP-status-like by convention, so codes in the valid HTTP range are used
// directly; anything else falls back to 400 or 500 by side.
func StatusOfKind(k kinderr.Kind) int {
	if code := int(k.Code()); code >= 100 && code <= 599 {
		return code
	}
	if k.Side() == kinderr.SideClient {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Status maps an error to an HTTP status code, normalizing it first.
// A nil error maps to 200.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return StatusOfKind(kinderr.Normalize(err).Kind())
}

// KindOf maps an HTTP status code back to a built-in kind.
// Unmapped statuses fall back to BadRequest or InternalServerError by side.
func KindOf(status int) kinderr.Kind {
	if k, ok := statusToKind[status]; ok {
		return k
	}
	if status >= 500 {
		return kinderr.InternalServerError
	}
	return kinderr.BadRequest
}

// WriteError normalizes err and writes its canonical JSON form
// (class, message, details) with the status mapped from its kind.
// Does nothing if err is nil.
func WriteError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	writeError(w, kinderr.Normalize(err))
}

func writeError(w http.ResponseWriter, e *kinderr.Error) {
	b, marshalErr := json.Marshal(e)
	if marshalErr != nil {
		// A detail value that cannot be marshaled; fall back to the default shape.
		b, _ = json.Marshal(kinderr.Default())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(b)
		_, _ = w.Write([]byte("\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOfKind(e.Kind()))
	_, _ = w.Write(b)
	_, _ = w.Write([]byte("\n"))
}

// FromResponse reconstructs a canonical error from an HTTP error response.
// Bodies in the canonical shape are decoded as-is; anything else becomes the
// message. The kind is never on the wire, so it is rebuilt from the status.
func FromResponse(status int, body []byte) *kinderr.Error {
	kind := KindOf(status)

	var e kinderr.Error
	if err := json.Unmarshal(body, &e); err == nil && e.Class() != "" {
		return e.WithKind(kind)
	}

	msg := string(body)
	if msg == "" {
		msg = kind.Description()
	}
	return kinderr.New(kind, kinderr.ClassOf(kind, "Error"), msg, nil)
}

var statusToKind = map[int]kinderr.Kind{
	http.StatusBadRequest:          kinderr.BadRequest,
	http.StatusUnauthorized:        kinderr.Unauthorized,
	http.StatusForbidden:           kinderr.Forbidden,
	http.StatusNotFound:            kinderr.NotFound,
	http.StatusConflict:            kinderr.Conflict,
	http.StatusPreconditionFailed:  kinderr.PreconditionFailed,
	http.StatusTooManyRequests:     kinderr.TooManyRequests,
	499:                            kinderr.Canceled,
	http.StatusInternalServerError: kinderr.InternalServerError,
	http.StatusNotImplemented:      kinderr.NotImplemented,
	http.StatusServiceUnavailable:  kinderr.ServiceUnavailable,
	http.StatusGatewayTimeout:      kinderr.GatewayTimeout,
}
