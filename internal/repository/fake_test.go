package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB records the statements it receives and answers with canned
// results, so repository behavior can be checked without a server.
type fakeDB struct {
	queries []string
	args    [][]any

	columns []string
	rows    [][]any
	tag     string
	err     error
}

func (f *fakeDB) record(query string, args []any) {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
}

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.record(query, args)
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	return pgconn.NewCommandTag(f.tag), nil
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.record(query, args)
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{columns: f.columns, rows: f.rows, pos: -1}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	rows, err := f.Query(ctx, query, args...)
	if err != nil {
		return errRow{err: err}
	}
	return rows.(*fakeRows)
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// fakeRows is a minimal pgx.Rows over in-memory values. Destinations that
// implement sql.Scanner receive the raw value; others are assigned directly.
type fakeRows struct {
	columns []string
	rows    [][]any
	pos     int
	closed  bool
}

func (r *fakeRows) Close()                        { r.closed = true }
func (r *fakeRows) Err() error                    { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fields := make([]pgconn.FieldDescription, len(r.columns))
	for i, name := range r.columns {
		fields[i] = pgconn.FieldDescription{Name: name}
	}
	return fields
}

func (r *fakeRows) Next() bool {
	if r.closed {
		return false
	}
	r.pos++
	if r.pos >= len(r.rows) {
		r.Close()
		return false
	}
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.pos < 0 || r.pos >= len(r.rows) {
		return pgx.ErrNoRows
	}
	row := r.rows[r.pos]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(row))
	}

	for i, value := range row {
		if scanner, ok := dest[i].(sql.Scanner); ok {
			if err := scanner.Scan(value); err != nil {
				return err
			}
			continue
		}

		if err := assign(reflect.ValueOf(dest[i]).Elem(), value); err != nil {
			return fmt.Errorf("scan column %s: %w", r.columns[i], err)
		}
	}
	return nil
}

// assign mirrors pgx: NULL only scans into pointers, which it sets to nil,
// and a value scans into a pointer by allocating its element.
func assign(target reflect.Value, value any) error {
	if value == nil {
		if target.Kind() != reflect.Pointer {
			return fmt.Errorf("cannot scan NULL into %s", target.Type())
		}
		target.Set(reflect.Zero(target.Type()))
		return nil
	}

	source := reflect.ValueOf(value)
	if source.Type().AssignableTo(target.Type()) {
		target.Set(source)
		return nil
	}
	if target.Kind() == reflect.Pointer && source.Type().AssignableTo(target.Type().Elem()) {
		elem := reflect.New(target.Type().Elem())
		elem.Elem().Set(source)
		target.Set(elem)
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, target.Type())
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos], nil
}

func (r *fakeRows) RawValues() [][]byte { return nil }
