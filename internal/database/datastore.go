// Package database implements the datastore gateway the generators and the
// verifier talk to. One database/sql implementation covers PostgreSQL,
// MySQL and SQLite; the provider only changes the driver, the placeholder
// format and how tables are cleared.
package database

import "context"

// Datastore is the gateway contract. Table names passed in must come from
// the schema registry; implementations reject anything unknown.
type Datastore interface {
	Ping(ctx context.Context) error
	Close() error

	// ClearTable deletes all rows of a table.
	ClearTable(ctx context.Context, table string) error

	// InsertRows batch-inserts rows whose values follow the column order
	// the registry declares for the table.
	InsertRows(ctx context.Context, table string, rows [][]any) error

	// FetchIDs returns the surrogate keys of a table, optionally filtered
	// by a raw predicate fragment applied server-side (e.g. "role = 'guest'").
	FetchIDs(ctx context.Context, table, predicate string) ([]int64, error)

	// Query runs an arbitrary read query.
	Query(ctx context.Context, query string, args ...any) ([]map[string]any, error)
}
