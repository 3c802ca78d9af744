package sqlstore

import (
	"database/sql"
	"fmt"

	"complaint-management/internal/role/repository"
	"complaint-management/pkg/database"
	"complaint-management/pkg/log"
)

type implRepository struct {
	db      *sql.DB
	dialect database.Dialect
	l       log.Logger
}

// New creates a SQL-backed Repository for the role domain.
func New(db *sql.DB, dialect database.Dialect, l log.Logger) repository.Repository {
	if db == nil {
		panic("role/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, dialect: dialect, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("role/repository/sqlstore.%s", method)
}
