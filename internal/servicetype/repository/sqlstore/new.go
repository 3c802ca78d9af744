package sqlstore

import (
	"database/sql"
	"fmt"

	"complaint-management/internal/servicetype/repository"
	"complaint-management/pkg/database"
	"complaint-management/pkg/log"
)

type implRepository struct {
	db      *sql.DB
	dialect database.Dialect
	l       log.Logger
}

func New(db *sql.DB, dialect database.Dialect, l log.Logger) repository.Repository {
	if db == nil {
		panic("servicetype/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, dialect: dialect, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("servicetype/repository/sqlstore.%s", method)
}
