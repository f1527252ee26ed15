package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northflank-guides/go-with-postgres/internal/model"
)

// DB wraps a pgx connection pool with the handful of statements the bridge
// needs. All access to Postgres goes through here.
type DB struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach postgres: %w", err)
	}

	return &DB{
		pool: pool,
	}, nil
}

func (d *DB) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}

// Probe runs a round-trip query that returns a literal confirmation string.
func (d *DB) Probe(ctx context.Context) (string, error) {
	var connected string
	row := d.pool.QueryRow(ctx, `SELECT $1::text AS connected;`, "Connection to postgres successful!")
	if err := row.Scan(&connected); err != nil {
		return "", fmt.Errorf("failed to probe connection: %w", err)
	}
	return connected, nil
}

// EnsureTable creates my_table if it does not exist yet. Safe to call on
// every startup.
func (d *DB) EnsureTable(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS my_table(
		id BIGSERIAL PRIMARY KEY NOT NULL,
		name varchar,
		date TIMESTAMP NOT NULL DEFAULT current_timestamp
	);`

	if _, err := d.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

// Insert adds one row; id and date are assigned by the database.
func (d *DB) Insert(ctx context.Context, name string) error {
	if _, err := d.pool.Exec(ctx, `INSERT INTO my_table(name) VALUES($1);`, name); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// ReadByName returns every row whose name matches. No matches yields an
// empty, non-nil slice.
func (d *DB) ReadByName(ctx context.Context, name string) ([]model.Record, error) {
	rows, err := d.pool.Query(ctx, `SELECT id, name, date FROM my_table WHERE name = $1;`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := make([]model.Record, 0)
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Date); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return records, nil
}

// DropTable removes my_table entirely, rows and definition both.
func (d *DB) DropTable(ctx context.Context) error {
	if _, err := d.pool.Exec(ctx, `DROP TABLE IF EXISTS my_table;`); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}
	return nil
}
