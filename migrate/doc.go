// Package migrate collects table models for schema autogeneration.
//
// Models register themselves at init time:
//
//	func init() {
//	    migrate.Register(Widget{})
//	}
//
// A migration entrypoint then blank-imports every model package so that
// registration happens as an import side effect, and hands the
// collected schema to the generator:
//
//	import (
//	    _ "example.com/app/internal/model"
//	)
//
//	func main() {
//	    ...
//	    if err := migrate.Apply(ctx, db); err != nil { ... }
//	}
//
// Apply generates SurrealDB DDL (DEFINE TABLE / DEFINE FIELD) from each
// model's schema columns and executes it. Column defaults map to
// DEFAULT clauses and on-update expressions to VALUE clauses, which
// SurrealDB re-evaluates on every write.
package migrate
