package sqlstore_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "complaint-management/internal/department/repository"
	"complaint-management/internal/department/repository/sqlstore"
	"complaint-management/pkg/database"
	"complaint-management/pkg/log"
)

func TestDepartmentQueries(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := sqlstore.New(db, database.SQLServer(), log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT deptt_id, deptt_name, created_at, updated_at FROM Departments WHERE deptt_name = @p1 AND deptt_id <> @p2`,
	)).WithArgs("BILLING", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"deptt_id", "deptt_name", "created_at", "updated_at"}))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE Departments SET deptt_name = @p1, updated_at = @p2 WHERE deptt_id = @p3`)).
		WithArgs("BILLING", sqlmock.AnyArg(), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM Departments WHERE deptt_id = @p1`)).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	existing, err := r.GetOneDepartment(ctx, repo.GetOneDepartmentOptions{Name: "BILLING", ExcludeID: 2})
	require.NoError(t, err)
	assert.Zero(t, existing.ID)

	ok, err := r.UpdateDepartment(ctx, repo.UpdateDepartmentOptions{ID: 2, Name: "BILLING"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DeleteDepartment(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOneDepartmentWithoutFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := sqlstore.New(db, database.SQLServer(), log.NewNop())

	for _, opt := range []repo.GetOneDepartmentOptions{{}, {ExcludeID: 2}} {
		d, err := r.GetOneDepartment(context.Background(), opt)
		require.NoError(t, err)
		assert.Zero(t, d.ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
