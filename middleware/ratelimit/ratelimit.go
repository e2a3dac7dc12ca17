package ratelimit

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/forgo/batteries/problem"
)

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Store decides whether a keyed request may proceed.
type Store interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// KeyFunc derives the rate-limit key for a request.
type KeyFunc func(r *http.Request) string

// Config holds rate-limit middleware configuration.
type Config struct {
	Store Store

	// KeyFunc defaults to the client IP (see DefaultKeyFunc).
	KeyFunc KeyFunc

	// TrustForwardedFor keys by the first X-Forwarded-For entry when
	// present. Only enable behind a proxy that sets the header.
	TrustForwardedFor bool
}

// DefaultKeyFunc keys requests by client IP, optionally trusting the
// first X-Forwarded-For entry.
func DefaultKeyFunc(trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if trustXFF {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				if ip := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

// Middleware returns a middleware enforcing the configured limit.
// Rejections are 429 problem responses with Retry-After. Store errors
// fail open and are logged.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultKeyFunc(cfg.TrustForwardedFor)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Store == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := cfg.KeyFunc(r)
			dec, err := cfg.Store.Allow(r.Context(), key)
			if err != nil {
				slog.Warn("rate limit store unavailable, failing open",
					slog.String("key", key),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !dec.Allowed {
				retryAfter := int(dec.RetryAfter.Round(time.Second).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				problem.NewTooManyRequests(retryAfter).WithInstance(r.URL.Path).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
