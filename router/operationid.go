package router

import (
	"log/slog"
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`\W`)

// OperationID derives an operation id from an HTTP method and path
// template: the lowercased method, then the path with every non-word
// character replaced by an underscore, with leading and trailing
// underscores trimmed. Path parameters keep a double underscore on each
// inner side, marking everything around "__" as a parameter:
//
//	OperationID("GET", "/users/{user_id}/posts") == "get_users__user_id__posts"
//	OperationID("GET", "/users/{user_id}")       == "get_users__user_id"
func OperationID(method, pattern string) string {
	id := strings.ToLower(method) + nonWord.ReplaceAllString(pattern, "_")
	return strings.Trim(id, "_")
}

// RewriteOption configures UseRoutePathAsOperationIDs.
type RewriteOption func(*rewriteConfig)

type rewriteConfig struct {
	warnOnNameMismatch bool
}

// WarnOnNameMismatch logs a warning for every route whose declared name
// differs from its derived operation id.
func WarnOnNameMismatch() RewriteOption {
	return func(c *rewriteConfig) { c.warnOnNameMismatch = true }
}

// UseRoutePathAsOperationIDs overwrites every registered route's
// operation id with one derived from its method and path template. The
// derivation depends only on method and pattern, so repeated runs are
// idempotent as long as no routes are added in between.
//
// Call this once, after all routes are registered: routes added later
// are not rewritten, and the rewriter has no way to detect them.
func UseRoutePathAsOperationIDs(rt *Router, opts ...RewriteOption) {
	var cfg rewriteConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, route := range rt.routes {
		route.OperationID = OperationID(route.Method, route.Pattern)

		if cfg.warnOnNameMismatch && route.Name != "" && route.Name != route.OperationID {
			slog.Warn("route name does not match derived operation id",
				slog.String("pattern", route.Pattern),
				slog.String("name", route.Name),
				slog.String("operation_id", route.OperationID),
			)
		}
	}
}
