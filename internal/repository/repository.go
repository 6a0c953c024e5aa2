// Package repository handles all interactions with the database.
//
// Every operation receives the connection handle (DBTX) from its caller
// and issues exactly one parameterized statement. Repositories hold no
// connection state of their own, do no logging, and return driver errors
// wrapped but untranslated; classification is left to package sqlerr.
package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the connection handle repositories run statements on.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql renders squirrel builders with PostgreSQL's $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// statement is a rendered SQL string and its bound arguments.
type statement struct {
	sql  string
	args []any
}

func render(b sq.Sqlizer) (statement, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return statement{}, err
	}
	return statement{sql: query, args: args}, nil
}
