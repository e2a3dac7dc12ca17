// Package database provides a SurrealDB client instrumented for
// per-request query counting.
//
// The Database interface abstracts the three query shapes (list,
// single, mutation) behind context-aware methods. Every executed
// statement increments the request's querycount counter when one is
// present in the context, so the query-count middleware observes real
// database traffic without any per-handler wiring.
//
// # Error Handling
//
// Standard errors are defined for common failure cases and checked with
// errors.Is():
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage
//
//	db := database.NewSurrealDB(database.Config{Host: "localhost", Port: "8000"})
//	if err := db.Connect(ctx); err != nil { ... }
//	defer db.Close()
//
//	rows, err := db.Query(ctx, "SELECT * FROM widget WHERE is_deleted = false", nil)
package database
