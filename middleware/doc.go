// Package middleware provides request-pipeline batteries for net/http.
//
// All middleware share the standard shape func(http.Handler) http.Handler
// and compose with Chain:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.ProcessTime,
//	    middleware.QueryCount,
//	)
//
// # Response Stamping
//
// QueryCount and ProcessTime stamp their headers (X-DB-Query-Count,
// X-Process-Time) lazily, immediately before the first response byte is
// written. Statements executed or time spent after the handler starts
// streaming its body are not reflected in the headers.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): unique request identifier
//   - GetBasicAuthUser(ctx): authenticated basic-auth username
//   - querycount.FromContext(ctx): the per-request statement counter
package middleware
