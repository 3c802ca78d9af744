package sqlstore_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "complaint-management/internal/issue/repository"
	"complaint-management/internal/issue/repository/sqlstore"
	"complaint-management/pkg/database"
	"complaint-management/pkg/log"
)

func TestIssueQueriesPostgres(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := sqlstore.New(db, database.Postgres(), log.NewNop())

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO Issues (issue_type, created_at, updated_at) VALUES ($1, $2, $3) RETURNING issue_id`,
	)).WithArgs("NO SIGNAL", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"issue_id"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT issue_id, issue_type, created_at, updated_at FROM Issues WHERE issue_id = $1`)).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"issue_id", "issue_type", "created_at", "updated_at"}).
			AddRow(11, "NO SIGNAL", now, now))

	id, err := r.CreateIssue(ctx, repo.CreateIssueOptions{Type: "NO SIGNAL"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	got, err := r.GetOneIssue(ctx, repo.GetOneIssueOptions{ID: id})
	require.NoError(t, err)
	assert.Equal(t, "NO SIGNAL", got.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOneIssueWithoutFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := sqlstore.New(db, database.Postgres(), log.NewNop())

	it, err := r.GetOneIssue(context.Background(), repo.GetOneIssueOptions{ExcludeID: 4})
	require.NoError(t, err)
	assert.Zero(t, it.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
