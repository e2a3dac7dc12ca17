package crud

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/batteries/database"
	"github.com/forgo/batteries/pagination"
	"github.com/forgo/batteries/problem"
)

// CRUD bundles table-scoped data-access helpers for one table.
type CRUD struct {
	db            database.Database
	table         string
	resource      string
	softDeleteCol string
}

// Option customizes a CRUD.
type Option func(*CRUD)

// WithResourceName sets the name used in 404 problem details
// (default "Resource").
func WithResourceName(name string) Option {
	return func(c *CRUD) { c.resource = name }
}

// WithSoftDeleteColumn sets the column flagged by SoftDelete
// (default "is_deleted").
func WithSoftDeleteColumn(name string) Option {
	return func(c *CRUD) { c.softDeleteCol = name }
}

// New creates a CRUD bound to the given table.
func New(db database.Database, table string, opts ...Option) *CRUD {
	c := &CRUD{
		db:            db,
		table:         table,
		resource:      "Resource",
		softDeleteCol: "is_deleted",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the bound table name.
func (c *CRUD) Table() string { return c.table }

// notFound builds the 404 problem for this table's resource.
func (c *CRUD) notFound() *problem.Problem {
	return problem.NewNotFound(c.resource)
}

// Create inserts a record and returns it.
func (c *CRUD) Create(ctx context.Context, data map[string]any) (any, error) {
	created, err := c.db.QueryOne(ctx,
		"CREATE type::table($tb) CONTENT $data",
		map[string]any{"tb": c.table, "data": data},
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.table, err)
	}
	return created, nil
}

// Get fetches a record by id. A missing record is database.ErrNotFound.
func (c *CRUD) Get(ctx context.Context, id string) (any, error) {
	return c.db.QueryOne(ctx,
		"SELECT * FROM type::thing($tb, $id)",
		map[string]any{"tb": c.table, "id": id},
	)
}

// GetOr404 fetches a record by id, translating a missing record into a
// 404 problem naming the resource.
func (c *CRUD) GetOr404(ctx context.Context, id string) (any, error) {
	record, err := c.Get(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, c.notFound()
		}
		return nil, err
	}
	return record, nil
}

// ListOptions narrows and paginates GetMulti.
type ListOptions struct {
	// Pagination limits the fetch; nil fetches everything.
	Pagination *pagination.OffsetLimit

	// Where is an extra filter clause, without the WHERE keyword.
	// Parameterize values through Vars; never interpolate user input.
	Where string

	// Vars holds bind variables for Where. The names "tb", "limit", and
	// "start" are reserved.
	Vars map[string]any
}

// GetMulti fetches records with an optional filter and pagination.
// When paginated, total is the unpaginated match count (one extra count
// query); otherwise total is just len(items).
func (c *CRUD) GetMulti(ctx context.Context, opts ListOptions) (items []any, total int64, err error) {
	query := "SELECT * FROM type::table($tb)"
	if opts.Where != "" {
		query += " WHERE " + opts.Where
	}

	vars := map[string]any{"tb": c.table}
	for k, v := range opts.Vars {
		vars[k] = v
	}

	if opts.Pagination != nil {
		query += " LIMIT $limit START $start"
		vars["limit"] = opts.Pagination.Limit
		vars["start"] = opts.Pagination.Offset
	}

	results, err := c.db.Query(ctx, query, vars)
	if err != nil {
		return nil, 0, fmt.Errorf("listing %s: %w", c.table, err)
	}
	if len(results) > 0 {
		if rows, ok := results[0].([]any); ok {
			items = rows
		}
	}

	if opts.Pagination == nil {
		return items, int64(len(items)), nil
	}

	total, err = c.Count(ctx, opts.Where, opts.Vars)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Count returns the number of records matching the filter clause.
func (c *CRUD) Count(ctx context.Context, where string, vars map[string]any) (int64, error) {
	query := "SELECT count() AS count FROM type::table($tb)"
	if where != "" {
		query += " WHERE " + where
	}
	query += " GROUP ALL"

	qvars := map[string]any{"tb": c.table}
	for k, v := range vars {
		qvars[k] = v
	}

	row, err := c.db.QueryOne(ctx, query, qvars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// GROUP ALL over zero rows yields no group.
			return 0, nil
		}
		return 0, fmt.Errorf("counting %s: %w", c.table, err)
	}

	m, ok := row.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("counting %s: unexpected result %T", c.table, row)
	}
	return toInt64(m["count"])
}

// Exist reports whether at least one record matches the filter clause.
func (c *CRUD) Exist(ctx context.Context, where string, vars map[string]any) (bool, error) {
	query := "SELECT 1 AS one FROM type::table($tb)"
	if where != "" {
		query += " WHERE " + where
	}
	query += " LIMIT 1"

	qvars := map[string]any{"tb": c.table}
	for k, v := range vars {
		qvars[k] = v
	}

	if _, err := c.db.QueryOne(ctx, query, qvars); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s existence: %w", c.table, err)
	}
	return true, nil
}

// ExistN reports whether exactly n records match the filter clause. The
// fetch is capped at n+1 rows, so it never scans the full table.
func (c *CRUD) ExistN(ctx context.Context, where string, vars map[string]any, n int) (bool, error) {
	if n < 0 {
		return false, errors.New("n must be greater than or equal to 0")
	}

	query := "SELECT 1 AS one FROM type::table($tb)"
	if where != "" {
		query += " WHERE " + where
	}
	query += " LIMIT $limit"

	qvars := map[string]any{"tb": c.table, "limit": n + 1}
	for k, v := range vars {
		qvars[k] = v
	}

	results, err := c.db.Query(ctx, query, qvars)
	if err != nil {
		return false, fmt.Errorf("checking %s existence: %w", c.table, err)
	}

	count := 0
	if len(results) > 0 {
		if rows, ok := results[0].([]any); ok {
			count = len(rows)
		}
	}
	return count == n, nil
}

// Patch merges the given fields into a record and returns the updated
// record. A missing record is database.ErrNotFound.
func (c *CRUD) Patch(ctx context.Context, id string, fields map[string]any) (any, error) {
	return c.db.QueryOne(ctx,
		"UPDATE type::thing($tb, $id) MERGE $data",
		map[string]any{"tb": c.table, "id": id, "data": fields},
	)
}

// SoftDelete flags a record's soft-delete column instead of removing
// the row, and returns the updated record. A missing record is a 404
// problem naming the resource.
func (c *CRUD) SoftDelete(ctx context.Context, id string) (any, error) {
	record, err := c.Patch(ctx, id, map[string]any{c.softDeleteCol: true})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, c.notFound()
		}
		return nil, err
	}
	return record, nil
}

// Delete removes a record permanently.
func (c *CRUD) Delete(ctx context.Context, id string) error {
	err := c.db.Execute(ctx,
		"DELETE type::thing($tb, $id)",
		map[string]any{"tb": c.table, "id": id},
	)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.table, err)
	}
	return nil
}

// Upsert creates the record when missing and fully replaces it when
// present, returning the stored record.
func (c *CRUD) Upsert(ctx context.Context, id string, data map[string]any) (any, error) {
	record, err := c.db.QueryOne(ctx,
		"UPSERT type::thing($tb, $id) CONTENT $data",
		map[string]any{"tb": c.table, "id": id, "data": data},
	)
	if err != nil {
		return nil, fmt.Errorf("upserting %s: %w", c.table, err)
	}
	return record, nil
}

// toInt64 normalizes the numeric types the driver may decode a count
// into.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("unexpected count type %T", v)
	}
}
