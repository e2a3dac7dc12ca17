// Package batteries is a collection of small, independent helper
// utilities for Go HTTP APIs and their database tooling.
//
// Each subpackage is a leaf with no dependency on the others beyond the
// shared problem-details error type:
//
//   - problem: RFC 9457 problem-details error type and handler adapter
//   - pagination: page/size and offset/limit query-parameter schemas
//   - upload: content-sniffing file validator and size helpers
//   - middleware: request pipeline batteries (request id, logging,
//     recovery, CORS, basic auth, query counting, request timing)
//   - middleware/ratelimit: pluggable rate limiting (memory or Redis)
//   - querycount: request-scoped database statement counter
//   - router: route registry with operation-id rewriting
//   - schema: declarative column mixins for table models
//   - migrate: model registry and schema autogeneration
//   - database: counting-instrumented SurrealDB client
//   - crud: table-scoped create/read/update/delete helpers
//
// See examples/server for a fully wired API using every battery.
package batteries
