// Package repositorytest provides in-memory fakes for the repository.DB
// interface so query construction, parameter binding and transaction
// discipline can be tested without a live database.
package repositorytest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Captured is one statement observed by a fake, with its bound arguments.
type Captured struct {
	SQL  string
	Args []any
}

// FakeDB implements repository.DB. Behavior is supplied per test through
// the Fn fields; every statement is recorded in Queries.
type FakeDB struct {
	Queries []Captured

	ExecFn     func(sql string, args []any) (pgconn.CommandTag, error)
	QueryFn    func(sql string, args []any) (pgx.Rows, error)
	QueryRowFn func(sql string, args []any) pgx.Row
	BeginFn    func() (pgx.Tx, error)
}

func (db *FakeDB) record(sql string, args []any) {
	db.Queries = append(db.Queries, Captured{SQL: sql, Args: args})
}

func (db *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.record(sql, args)
	if db.ExecFn == nil {
		return pgconn.NewCommandTag(""), fmt.Errorf("unexpected Exec: %s", sql)
	}
	return db.ExecFn(sql, args)
}

func (db *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.record(sql, args)
	if db.QueryFn == nil {
		return nil, fmt.Errorf("unexpected Query: %s", sql)
	}
	return db.QueryFn(sql, args)
}

func (db *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.record(sql, args)
	if db.QueryRowFn == nil {
		return RowErr(fmt.Errorf("unexpected QueryRow: %s", sql))
	}
	return db.QueryRowFn(sql, args)
}

func (db *FakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if db.BeginFn == nil {
		return nil, fmt.Errorf("unexpected Begin")
	}
	return db.BeginFn()
}

// Row returns a pgx.Row whose Scan fills the destinations with vals.
func Row(vals ...any) pgx.Row {
	return rowFunc(func(dest ...any) error {
		return ScanInto(dest, vals)
	})
}

// RowErr returns a pgx.Row whose Scan fails with err.
func RowErr(err error) pgx.Row {
	return rowFunc(func(dest ...any) error {
		return err
	})
}

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error {
	return f(dest...)
}

// Rows returns a pgx.Rows yielding one result row per vals slice.
func Rows(rows ...[]any) pgx.Rows {
	return &fakeRows{rows: rows, idx: -1}
}

type fakeRows struct {
	pgx.Rows
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.rows) {
		return fmt.Errorf("scan called out of range")
	}
	return ScanInto(dest, r.rows[r.idx])
}

func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) Close() {}

// FakeTx implements the pgx.Tx methods the repositories use. Commit and
// Rollback are recorded; rolling back after a commit is a no-op, matching
// the deferred-rollback idiom.
type FakeTx struct {
	pgx.Tx
	Queries    []Captured
	Committed  bool
	RolledBack bool

	ExecFn     func(sql string, args []any) (pgconn.CommandTag, error)
	QueryRowFn func(sql string, args []any) pgx.Row
}

func (t *FakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.Queries = append(t.Queries, Captured{SQL: sql, Args: args})
	if t.ExecFn == nil {
		return pgconn.NewCommandTag(""), fmt.Errorf("unexpected tx Exec: %s", sql)
	}
	return t.ExecFn(sql, args)
}

func (t *FakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	t.Queries = append(t.Queries, Captured{SQL: sql, Args: args})
	if t.QueryRowFn == nil {
		return RowErr(fmt.Errorf("unexpected tx QueryRow: %s", sql))
	}
	return t.QueryRowFn(sql, args)
}

func (t *FakeTx) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *FakeTx) Rollback(ctx context.Context) error {
	if t.Committed {
		return pgx.ErrTxClosed
	}
	t.RolledBack = true
	return nil
}

// ScanInto assigns vals to the scan destinations, converting the handful
// of types the repositories read.
func ScanInto(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan has %d destinations for %d values", len(dest), len(vals))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = toInt64(vals[i])
		case *int:
			*p = int(toInt64(vals[i]))
		case *float64:
			switch v := vals[i].(type) {
			case float64:
				*p = v
			case int:
				*p = float64(v)
			default:
				return fmt.Errorf("value %d: cannot scan %T into *float64", i, vals[i])
			}
		case *string:
			*p = vals[i].(string)
		case *bool:
			*p = vals[i].(bool)
		case *[]string:
			*p = vals[i].([]string)
		case *time.Time:
			*p = vals[i].(time.Time)
		default:
			return fmt.Errorf("value %d: unsupported scan destination %T", i, d)
		}
	}
	return nil
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	default:
		panic(fmt.Sprintf("cannot convert %T to int64", v))
	}
}
