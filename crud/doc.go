// Package crud provides table-scoped create/read/update/delete helpers
// over a database.Database, tying together pagination, problem-details
// errors, and the soft-delete column convention.
//
// A CRUD value is bound to one table:
//
//	users := crud.New(db, "user", crud.WithResourceName("User"))
//
//	u, err := users.GetOr404(ctx, id)       // *problem.Problem on miss
//	items, total, err := users.GetMulti(ctx, crud.ListOptions{
//	    Pagination: &pagination.OffsetLimit{Offset: 0, Limit: 10},
//	})
//	_, err = users.SoftDelete(ctx, id)      // flags is_deleted, keeps the row
//
// Read helpers return database.ErrNotFound for a missing record; the
// Or404 variants translate that into a 404 problem naming the resource,
// ready to return from a problem.HandlerFunc.
package crud
