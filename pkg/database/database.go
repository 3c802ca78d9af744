package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
)

// Config describes how to reach the relational store.
type Config struct {
	Driver                 string
	Host                   string
	Port                   int
	Name                   string
	User                   string
	Password               string
	TrustServerCertificate bool
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetime        time.Duration
}

// DSN builds the driver-specific connection string.
func (c Config) DSN() (string, error) {
	switch c.Driver {
	case DriverSQLServer, "":
		q := url.Values{}
		q.Set("database", c.Name)
		if c.TrustServerCertificate {
			q.Set("TrustServerCertificate", "true")
		}
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(c.User, c.Password),
			Host:     hostPort(c.Host, c.Port, 1433),
			RawQuery: q.Encode(),
		}
		return u.String(), nil
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     hostPort(c.Host, c.Port, 5432),
			Path:     "/" + c.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Driver)
	}
}

func hostPort(host string, port, fallback int) string {
	if port == 0 {
		port = fallback
	}
	if host == "" {
		host = "localhost"
	}
	return host + ":" + strconv.Itoa(port)
}

// Open opens the connection pool, applies pool sizing and pings the server
// once so that a bad configuration fails at startup.
func Open(ctx context.Context, cfg Config) (*sql.DB, Dialect, error) {
	dialect, err := NewDialect(cfg.Driver)
	if err != nil {
		return nil, Dialect{}, err
	}
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, Dialect{}, err
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, Dialect{}, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, dialect, nil
}

// Close closes db if it is not nil.
func Close(db *sql.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
