package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect identifies the SQL engine behind the store
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

var (
	// ErrUniqueViolation is returned when an insert breaks a UNIQUE constraint
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrForeignKeyViolation is returned when a row references a missing parent
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
	// ErrNotFound is returned when no row matched
	ErrNotFound = errors.New("row not found")
)

// ParseDialect validates a driver name from configuration
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(s)) {
	case DialectSQLite:
		return DialectSQLite, nil
	case DialectPostgres:
		return DialectPostgres, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", s)
}

// dsn turns the configured connection string into a driver DSN.
// SQLite always gets foreign keys on, a busy timeout so concurrent
// writers wait on the file lock, and WAL so readers are not blocked.
func (d Dialect) dsn(conn string) (string, error) {
	if d != DialectSQLite {
		return conn, nil
	}
	if conn != ":memory:" && !strings.HasPrefix(conn, "file:") {
		if err := os.MkdirAll(filepath.Dir(conn), 0o755); err != nil {
			return "", fmt.Errorf("create db directory: %w", err)
		}
	}
	sep := "?"
	if strings.Contains(conn, "?") {
		sep = "&"
	}
	return conn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
}

// rebind rewrites ? placeholders into the $N form Postgres expects
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// classify maps the driver's structured constraint error onto the
// package sentinels. The original error stays in the chain for logging.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		}
		return err
	}

	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		}
	}
	return err
}
