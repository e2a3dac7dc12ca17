package router

import (
	"fmt"
	"net/http"
)

// Route is a registered endpoint with its generator-facing metadata.
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler

	// Name is the developer-declared handler name, when provided.
	Name string

	// OperationID identifies the endpoint in generated interface
	// descriptions. Defaults to Name until rewritten.
	OperationID string
}

// Named declares the route's handler name. The operation id defaults to
// the name until a rewrite pass assigns one.
func (r *Route) Named(name string) *Route {
	r.Name = name
	if r.OperationID == "" {
		r.OperationID = name
	}
	return r
}

// Router registers method-qualified patterns on an http.ServeMux while
// recording each route for later inspection and rewriting.
type Router struct {
	mux    *http.ServeMux
	routes []*Route
}

// New creates an empty Router.
func New() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers a handler for the method and pattern.
func (rt *Router) Handle(method, pattern string, h http.Handler) *Route {
	route := &Route{Method: method, Pattern: pattern, Handler: h}
	rt.mux.Handle(fmt.Sprintf("%s %s", method, pattern), h)
	rt.routes = append(rt.routes, route)
	return route
}

// HandleFunc registers a handler function for the method and pattern.
func (rt *Router) HandleFunc(method, pattern string, h http.HandlerFunc) *Route {
	return rt.Handle(method, pattern, h)
}

// Routes returns the registered routes in registration order. The
// returned slice is a copy; the routes themselves are shared.
func (rt *Router) Routes() []*Route {
	out := make([]*Route, len(rt.routes))
	copy(out, rt.routes)
	return out
}

// ServeHTTP dispatches to the underlying mux.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}
