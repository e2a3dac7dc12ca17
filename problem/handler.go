package problem

import (
	"errors"
	"log/slog"
	"net/http"
)

// HandlerFunc is an http.HandlerFunc that may fail with an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts a HandlerFunc into an http.Handler that translates a
// returned *Problem into an application/problem+json response with the
// problem's declared status code. The Instance member defaults to the
// request path when unset.
//
// Only *Problem values are translated. Any other error is rendered as a
// generic 500 internal problem with its message logged, never exposed.
func Handler(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		var p *Problem
		if errors.As(err, &p) {
			if p.Instance == "" {
				// Copy so a shared constructor result is never mutated.
				instanced := *p
				instanced.Instance = r.URL.Path
				p = &instanced
			}
			if p.note != "" {
				slog.Debug("problem note",
					slog.String("path", r.URL.Path),
					slog.Int("status", p.Status),
					slog.String("note", p.note),
				)
			}
			p.WriteJSON(w)
			return
		}

		slog.Error("unhandled handler error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		NewInternal("").WithInstance(r.URL.Path).WriteJSON(w)
	})
}
