// Package model holds the plain data shapes that move between the
// repository, service and handler layers.
//
// Types here carry `db` tags (used by pgx.RowToStructByName) and `json`
// tags (used by the HTTP layer). They contain no behavior that touches
// the database.
package model
