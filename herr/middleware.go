package herr

import "net/http"

// HandlerFunc is an HTTP handler that returns an error.
// If a non-nil error is returned, the middleware writes the canonical
// JSON error response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler wraps a [HandlerFunc] into an [http.Handler]. A returned error is
// normalized once and written with the status mapped from its kind; the
// handler itself stays free of response-shaping concerns.
func Handler(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			WriteError(w, err)
		}
	})
}
