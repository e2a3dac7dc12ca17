package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConnection indicates a failure to connect to or communicate
	// with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Database defines the interface for database operations. Every
// executed statement increments the context's querycount counter.
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns the result sets, one per
	// statement in the query string.
	Query(ctx context.Context, query string, vars map[string]any) ([]any, error)

	// QueryOne executes a query and returns the first record of the
	// first result set, or ErrNotFound.
	QueryOne(ctx context.Context, query string, vars map[string]any) (any, error)

	// Execute runs a query without returning results (for mutations).
	Execute(ctx context.Context, query string, vars map[string]any) error
}
