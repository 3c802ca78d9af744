package sqlstore

import (
	"database/sql"
	"fmt"

	"complaint-management/internal/complaint/repository"
	"complaint-management/pkg/database"
	"complaint-management/pkg/log"
)

type implRepository struct {
	db      *sql.DB
	dialect database.Dialect
	l       log.Logger
}

// New creates a SQL-backed Repository for the complaint domain.
func New(db *sql.DB, dialect database.Dialect, l log.Logger) repository.Repository {
	if db == nil {
		panic("complaint/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, dialect: dialect, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("complaint/repository/sqlstore.%s", method)
}
