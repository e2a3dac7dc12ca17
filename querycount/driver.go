package querycount

import (
	"context"
	"database/sql/driver"
	"errors"
)

// WrapDriver instruments a database/sql driver so that every statement
// executed with a counter-carrying context increments that counter.
//
//	sql.Register("postgres-counted", querycount.WrapDriver(&pq.Driver{}))
func WrapDriver(d driver.Driver) driver.Driver {
	return &countingDriver{parent: d}
}

// WrapConnector instruments a driver.Connector for use with sql.OpenDB.
func WrapConnector(c driver.Connector) driver.Connector {
	return &countingConnector{parent: c}
}

type countingDriver struct {
	parent driver.Driver
}

func (d *countingDriver) Open(name string) (driver.Conn, error) {
	c, err := d.parent.Open(name)
	if err != nil {
		return nil, err
	}
	return &countingConn{parent: c}, nil
}

type countingConnector struct {
	parent driver.Connector
}

func (c *countingConnector) Connect(ctx context.Context) (driver.Conn, error) {
	conn, err := c.parent.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return &countingConn{parent: conn}, nil
}

func (c *countingConnector) Driver() driver.Driver {
	return WrapDriver(c.parent.Driver())
}

// countingConn wraps a driver connection. Optional driver interfaces
// are forwarded when the parent implements them; otherwise the stdlib
// ErrSkip contract routes database/sql to its fallback path.
type countingConn struct {
	parent driver.Conn
}

func (c *countingConn) Prepare(query string) (driver.Stmt, error) {
	s, err := c.parent.Prepare(query)
	if err != nil {
		return nil, err
	}
	return &countingStmt{parent: s}, nil
}

func (c *countingConn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	if p, ok := c.parent.(driver.ConnPrepareContext); ok {
		s, err := p.PrepareContext(ctx, query)
		if err != nil {
			return nil, err
		}
		return &countingStmt{parent: s}, nil
	}
	return c.Prepare(query)
}

func (c *countingConn) Close() error {
	return c.parent.Close()
}

func (c *countingConn) Begin() (driver.Tx, error) {
	return c.parent.Begin() //nolint:staticcheck // required by driver.Conn
}

func (c *countingConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	if b, ok := c.parent.(driver.ConnBeginTx); ok {
		return b.BeginTx(ctx, opts)
	}
	return c.parent.Begin() //nolint:staticcheck // fallback for legacy drivers
}

func (c *countingConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	execer, ok := c.parent.(driver.ExecerContext)
	if !ok {
		return nil, driver.ErrSkip
	}
	res, err := execer.ExecContext(ctx, query, args)
	if errors.Is(err, driver.ErrSkip) {
		return nil, err
	}
	Increment(ctx)
	return res, err
}

func (c *countingConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	queryer, ok := c.parent.(driver.QueryerContext)
	if !ok {
		return nil, driver.ErrSkip
	}
	rows, err := queryer.QueryContext(ctx, query, args)
	if errors.Is(err, driver.ErrSkip) {
		return nil, err
	}
	Increment(ctx)
	return rows, err
}

func (c *countingConn) Ping(ctx context.Context) error {
	if p, ok := c.parent.(driver.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (c *countingConn) ResetSession(ctx context.Context) error {
	if r, ok := c.parent.(driver.SessionResetter); ok {
		return r.ResetSession(ctx)
	}
	return nil
}

func (c *countingConn) IsValid() bool {
	if v, ok := c.parent.(driver.Validator); ok {
		return v.IsValid()
	}
	return true
}

func (c *countingConn) CheckNamedValue(nv *driver.NamedValue) error {
	if n, ok := c.parent.(driver.NamedValueChecker); ok {
		return n.CheckNamedValue(nv)
	}
	return driver.ErrSkip
}

// countingStmt wraps a prepared statement. database/sql routes
// execution through the context-aware paths, which count and fall back
// to the parent's bare Exec/Query for legacy drivers.
type countingStmt struct {
	parent driver.Stmt
}

func (s *countingStmt) Close() error {
	return s.parent.Close()
}

func (s *countingStmt) NumInput() int {
	return s.parent.NumInput()
}

func (s *countingStmt) Exec(args []driver.Value) (driver.Result, error) {
	return s.parent.Exec(args) //nolint:staticcheck // required by driver.Stmt
}

func (s *countingStmt) Query(args []driver.Value) (driver.Rows, error) {
	return s.parent.Query(args) //nolint:staticcheck // required by driver.Stmt
}

func (s *countingStmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	if e, ok := s.parent.(driver.StmtExecContext); ok {
		res, err := e.ExecContext(ctx, args)
		if errors.Is(err, driver.ErrSkip) {
			return nil, err
		}
		Increment(ctx)
		return res, err
	}
	vals, err := namedValuesToValues(args)
	if err != nil {
		return nil, err
	}
	Increment(ctx)
	return s.parent.Exec(vals) //nolint:staticcheck // fallback for legacy drivers
}

func (s *countingStmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	if q, ok := s.parent.(driver.StmtQueryContext); ok {
		rows, err := q.QueryContext(ctx, args)
		if errors.Is(err, driver.ErrSkip) {
			return nil, err
		}
		Increment(ctx)
		return rows, err
	}
	vals, err := namedValuesToValues(args)
	if err != nil {
		return nil, err
	}
	Increment(ctx)
	return s.parent.Query(vals) //nolint:staticcheck // fallback for legacy drivers
}

func namedValuesToValues(args []driver.NamedValue) ([]driver.Value, error) {
	vals := make([]driver.Value, len(args))
	for i, nv := range args {
		if nv.Name != "" {
			return nil, errors.New("querycount: driver does not support named parameters")
		}
		vals[i] = nv.Value
	}
	return vals, nil
}
