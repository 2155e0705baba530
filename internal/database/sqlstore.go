package database

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/frostbnb/seedctl/internal/schema"
)

// defaultBatch caps the number of rows per INSERT statement.
const defaultBatch = 500

type SQLStore struct {
	db       *sql.DB
	provider string
	qb       sq.StatementBuilderType
	batch    int
}

// SetBatchSize overrides the number of rows per INSERT statement.
func (s *SQLStore) SetBatchSize(n int) {
	if n > 0 {
		s.batch = n
	}
}

// Open connects to the database for the given provider and verifies the
// connection with a ping.
func Open(ctx context.Context, provider, url string) (*SQLStore, error) {
	var driverName string
	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		driverName = "pgx"
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", provider, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", provider, err)
	}

	qb := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if driverName == "pgx" {
		qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return &SQLStore{db: db, provider: provider, qb: qb, batch: defaultBatch}, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// ClearTable empties a registered table. Postgres truncates with identity
// restart and cascade so dependents from a previous run cannot block the
// delete; sqlite additionally resets the rowid sequence.
func (s *SQLStore) ClearTable(ctx context.Context, table string) error {
	t, err := schema.Lookup(table)
	if err != nil {
		return err
	}

	switch s.provider {
	case "postgresql", "postgres":
		_, err = s.db.ExecContext(ctx, "TRUNCATE TABLE "+t.Name+" RESTART IDENTITY CASCADE")
	case "mysql":
		if _, err = s.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
			return fmt.Errorf("clear %s: %w", t.Name, err)
		}
		_, err = s.db.ExecContext(ctx, "TRUNCATE TABLE "+t.Name)
		if _, restoreErr := s.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1"); restoreErr != nil && err == nil {
			return fmt.Errorf("clear %s: restore foreign key checks: %w", t.Name, restoreErr)
		}
	default:
		if _, err = s.db.ExecContext(ctx, "DELETE FROM "+t.Name); err == nil {
			s.db.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", t.Name)
		}
	}
	if err != nil {
		return fmt.Errorf("clear %s: %w", t.Name, err)
	}
	return nil
}

// InsertRows batch-inserts rows in registry column order, chunked so very
// large batches stay under placeholder limits.
func (s *SQLStore) InsertRows(ctx context.Context, table string, rows [][]any) error {
	t, err := schema.Lookup(table)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	for start := 0; start < len(rows); start += s.batch {
		end := start + s.batch
		if end > len(rows) {
			end = len(rows)
		}

		builder := s.qb.Insert(t.Name).Columns(t.Columns...)
		for _, row := range rows[start:end] {
			if len(row) != len(t.Columns) {
				return fmt.Errorf("insert %s: row has %d values, want %d", t.Name, len(row), len(t.Columns))
			}
			builder = builder.Values(row...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("insert %s: build statement: %w", t.Name, err)
		}
		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s (rows %d-%d): %w", t.Name, start, end-1, err)
		}
	}
	return nil
}

func (s *SQLStore) FetchIDs(ctx context.Context, table, predicate string) ([]int64, error) {
	t, err := schema.Lookup(table)
	if err != nil {
		return nil, err
	}
	if t.IDColumn == "" {
		return nil, fmt.Errorf("table %s has no surrogate key column", t.Name)
	}

	builder := s.qb.Select(t.IDColumn).From(t.Name).OrderBy(t.IDColumn)
	if predicate != "" {
		builder = builder.Where(predicate)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("fetch ids from %s: build statement: %w", t.Name, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch ids from %s: %w", t.Name, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("fetch ids from %s: scan: %w", t.Name, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch ids from %s: %w", t.Name, err)
	}
	return ids, nil
}

func (s *SQLStore) Query(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}

	var result []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("query scan: %w", err)
		}

		record := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	return result, nil
}
