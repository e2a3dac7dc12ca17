// Package problem implements RFC 9457 Problem Details for HTTP APIs.
//
// A Problem is an error value carrying a machine-readable problem type,
// a human-readable title, an HTTP status code, and optional detail and
// instance fields. A registered handler adapter serializes any Problem
// returned by a handler into an application/problem+json response body
// with the declared status code.
//
// # Raising Problems
//
// Handlers return a *Problem (directly or wrapped) to produce a
// problem-details response:
//
//	func getWidget(w http.ResponseWriter, r *http.Request) error {
//	    widget, err := store.Get(r.Context(), id)
//	    if err != nil {
//	        return problem.NewNotFound("widget")
//	    }
//	    return json.NewEncoder(w).Encode(widget)
//	}
//
//	mux.Handle("GET /widgets/{id}", problem.Handler(getWidget))
//
// # Known Limitation
//
// The handler adapter only translates *Problem values. Any other error
// kind (JSON decode failures, validation library errors, ...) is
// rendered as a generic 500 internal problem, not translated into a
// matching status code.
package problem
