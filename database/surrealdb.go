package database

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"

	"github.com/forgo/batteries/querycount"
)

// Config holds SurrealDB connection settings.
type Config struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// SurrealDB implements the Database interface for SurrealDB.
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB creates a new SurrealDB instance.
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{config: cfg}
}

// Connect establishes a connection to SurrealDB.
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if s.config.User != "" {
		_, err = db.SignIn(ctx, &surrealdb.Auth{
			Username: s.config.User,
			Password: s.config.Password,
		})
		if err != nil {
			_ = db.Close(ctx)
			return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
		}
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the database connection.
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the database connection.
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query executes a query and returns one unwrapped result set per
// statement. The request's query counter is incremented before the
// round trip.
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]any) ([]any, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	querycount.Increment(ctx)

	results, err := surrealdb.Query[any](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil, nil
	}

	output := make([]any, 0, len(*results))
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, ErrQuery
		}
		output = append(output, r.Result)
	}
	return output, nil
}

// QueryOne executes a query and returns the first record of the first
// result set.
func (s *SurrealDB) QueryOne(ctx context.Context, query string, vars map[string]any) (any, error) {
	results, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	if rows, ok := results[0].([]any); ok {
		if len(rows) == 0 {
			return nil, ErrNotFound
		}
		return rows[0], nil
	}
	// Scalar result (e.g. count queries)
	return results[0], nil
}

// Execute runs a query without returning results.
func (s *SurrealDB) Execute(ctx context.Context, query string, vars map[string]any) error {
	_, err := s.Query(ctx, query, vars)
	return err
}
