// Package querycount counts database statements per request.
//
// A Counter is installed into a request context (typically by the
// query-count middleware) and incremented by instrumented database
// clients for every statement they execute. The middleware reads the
// final count and stamps it on the response.
//
// Two integration points are provided:
//
//   - WrapDriver / WrapConnector instrument any database/sql driver;
//     every ExecContext/QueryContext carrying a counter context bumps
//     the counter.
//   - The database package's SurrealDB client calls Increment directly.
//
// Counting relies on context propagation: statements executed through
// context-less driver methods are not observed.
package querycount
