package middleware

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/batteries/problem"
)

// BasicAuthConfig holds basic-auth middleware configuration.
type BasicAuthConfig struct {
	// Realm is advertised in the WWW-Authenticate challenge.
	Realm string

	// Users maps usernames to bcrypt password hashes. Plaintext
	// passwords never appear in configuration.
	Users map[string]string
}

// BasicAuth returns a middleware enforcing HTTP basic authentication
// against bcrypt password hashes. Failures produce a 401 problem
// response with a WWW-Authenticate challenge. The authenticated
// username is stored in the request context; see GetBasicAuthUser.
func BasicAuth(cfg BasicAuthConfig) Middleware {
	if cfg.Realm == "" {
		cfg.Realm = "restricted"
	}

	// Compared against for unknown usernames so both paths cost one
	// bcrypt verification.
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("-"), bcrypt.DefaultCost)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok {
				challenge(w, r, cfg.Realm, "credentials required")
				return
			}

			hash, known := cfg.Users[user]
			if !known {
				_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(pass))
				challenge(w, r, cfg.Realm, "invalid credentials")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)); err != nil {
				challenge(w, r, cfg.Realm, "invalid credentials")
				return
			}

			ctx := context.WithValue(r.Context(), basicUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetBasicAuthUser extracts the authenticated basic-auth username from
// context.
func GetBasicAuthUser(ctx context.Context) string {
	if user, ok := ctx.Value(basicUserKey).(string); ok {
		return user
	}
	return ""
}

func challenge(w http.ResponseWriter, r *http.Request, realm, detail string) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", realm))
	problem.NewUnauthorized(detail).WithInstance(r.URL.Path).WriteJSON(w)
}
