package database

import (
	"errors"
	"strconv"
	"strings"
)

const (
	DriverSQLServer = "sqlserver"
	DriverPostgres  = "postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Dialect rewrites portable queries, written with '?' placeholders, into the
// bind syntax of the configured driver.
type Dialect struct {
	driver string
}

// NewDialect returns the Dialect for driver. An empty driver means SQL Server.
func NewDialect(driver string) (Dialect, error) {
	switch driver {
	case DriverSQLServer, "":
		return Dialect{driver: DriverSQLServer}, nil
	case DriverPostgres:
		return Dialect{driver: DriverPostgres}, nil
	default:
		return Dialect{}, ErrUnsupportedDriver
	}
}

// SQLServer is the dialect of the primary deployment target.
func SQLServer() Dialect { return Dialect{driver: DriverSQLServer} }

// Postgres is the dialect used with the pgx driver.
func Postgres() Dialect { return Dialect{driver: DriverPostgres} }

func (d Dialect) Driver() string { return d.driver }

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d.driver == DriverPostgres {
		return "pgx"
	}
	return "sqlserver"
}

// Rebind replaces each '?' outside single-quoted literals with @pN
// (SQL Server) or $N (Postgres).
func (d Dialect) Rebind(query string) string {
	prefix := "@p"
	if d.driver == DriverPostgres {
		prefix = "$"
	}

	var b strings.Builder
	b.Grow(len(query) + 16)
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteString(prefix)
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// InsertReturningID builds an INSERT of columns into table that yields the
// generated idColumn as a single-row result. The query is already rebound.
func (d Dialect) InsertReturningID(table, idColumn string, columns ...string) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	cols := strings.Join(columns, ", ")

	var q string
	if d.driver == DriverPostgres {
		q = "INSERT INTO " + table + " (" + cols + ") VALUES (" + placeholders + ") RETURNING " + idColumn
	} else {
		q = "INSERT INTO " + table + " (" + cols + ") OUTPUT INSERTED." + idColumn + " VALUES (" + placeholders + ")"
	}
	return d.Rebind(q)
}
