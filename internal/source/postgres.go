package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/util"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// writePrefixes are statements the sql source refuses to run
var writePrefixes = []string{
	"INSERT", "UPDATE", "DELETE", "DROP", "CREATE", "ALTER", "TRUNCATE",
	"GRANT", "REVOKE", "MERGE", "COPY",
}

// IsWriteQuery reports whether query starts with a data or schema
// modifying statement.
func IsWriteQuery(query string) bool {
	upper := strings.ToUpper(strings.TrimSpace(query))
	for _, p := range writePrefixes {
		if strings.HasPrefix(upper, p) {
			return true
		}
	}
	return false
}

// Query runs a read-only query against the PostgreSQL database at url and
// returns its result set as a sheet. The connection is closed before
// returning; the sheet holds no database state.
func Query(ctx context.Context, url, query string) (*Sheet, error) {
	if url == "" {
		return nil, util.NoDatabaseURLError()
	}
	if IsWriteQuery(query) {
		return nil, util.WriteQueryError(query)
	}

	pool, err := connect(ctx, url)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	// CTEs can hide writes behind WITH.
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("begin read-only transaction: %w", err)
	}
	defer tx.Rollback(context.Background())

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sheet := &Sheet{Title: queryTitle(query)}
	for i, fd := range rows.FieldDescriptions() {
		sheet.Columns = append(sheet.Columns, grid.Column{
			Key:   fmt.Sprintf("c%d", i),
			Label: fd.Name,
			Kind:  kindForOID(fd.DataTypeOID),
		})
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		rec := make(grid.Record, len(values))
		for i, v := range values {
			rec[sheet.Columns[i].Key] = formatSQLValue(v)
		}
		sheet.Records = append(sheet.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := sheet.validate(); err != nil {
		return nil, err
	}
	return sheet, nil
}

// Ping connects to the database at url and returns the server version.
func Ping(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", util.NoDatabaseURLError()
	}
	pool, err := connect(ctx, url)
	if err != nil {
		return "", err
	}
	defer pool.Close()

	var version string
	if err := pool.QueryRow(ctx, "SHOW server_version").Scan(&version); err != nil {
		return "", fmt.Errorf("query server version: %w", err)
	}
	return version, nil
}

// connect opens a single-connection pool to url. Every session it opens
// defaults to read-only transactions.
func connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("invalid connection URL: %w", err)
	}

	cfg.MaxConns = 1
	cfg.MinConns = 0
	cfg.MaxConnLifetime = time.Minute
	cfg.MaxConnIdleTime = 10 * time.Second
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		if _, err := conn.Exec(ctx, "SET default_transaction_read_only = on"); err != nil {
			return fmt.Errorf("failed to make session read-only: %w", err)
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, util.DatabaseConnectionError(url, err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, util.DatabaseConnectionError(url, err)
	}
	return pool, nil
}

// kindForOID right-aligns numeric result columns
func kindForOID(oid uint32) grid.ColumnKind {
	switch oid {
	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID,
		pgtype.Float4OID, pgtype.Float8OID, pgtype.NumericOID:
		return grid.KindNumber
	default:
		return grid.KindText
	}
}

// queryTitle shortens a query for the header bar
func queryTitle(query string) string {
	title := strings.Join(strings.Fields(query), " ")
	if len(title) > 60 {
		title = title[:57] + "..."
	}
	return title
}
