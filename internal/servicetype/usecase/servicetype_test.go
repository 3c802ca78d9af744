package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaint-management/internal/issue"
	"complaint-management/internal/servicetype"
	"complaint-management/internal/servicetype/repository"
	"complaint-management/internal/servicetype/usecase"
	"complaint-management/pkg/log"
)

type fakeIssueUC struct {
	issue.UseCase
	known map[int64]bool
	err   error
}

func (f fakeIssueUC) Detail(ctx context.Context, id int64) (issue.Issue, error) {
	if f.err != nil {
		return issue.Issue{}, f.err
	}
	if !f.known[id] {
		return issue.Issue{}, issue.ErrIssueNotFound
	}
	return issue.Issue{ID: id, Type: "NO SIGNAL"}, nil
}

type fakeRepo struct {
	existing   servicetype.ServiceType
	lastLookup repository.GetOneServiceTypeOptions
	created    *repository.CreateServiceTypeOptions
	updated    *repository.UpdateServiceTypeOptions
	affected   bool
}

func (f *fakeRepo) CreateServiceType(ctx context.Context, opt repository.CreateServiceTypeOptions) (int64, error) {
	f.created = &opt
	return 10, nil
}

func (f *fakeRepo) GetOneServiceType(ctx context.Context, opt repository.GetOneServiceTypeOptions) (servicetype.ServiceType, error) {
	f.lastLookup = opt
	return f.existing, nil
}

func (f *fakeRepo) ListServiceTypes(ctx context.Context) ([]servicetype.ServiceType, error) {
	return []servicetype.ServiceType{{ID: 1, IssueID: 2, Name: "FIBER", IssueType: "NO SIGNAL"}}, nil
}

func (f *fakeRepo) UpdateServiceType(ctx context.Context, opt repository.UpdateServiceTypeOptions) (bool, error) {
	f.updated = &opt
	return f.affected, nil
}

func (f *fakeRepo) DeleteServiceType(ctx context.Context, id int64) (bool, error) {
	return f.affected, nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	issues := fakeIssueUC{known: map[int64]bool{2: true}}

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := usecase.New(repo, issues, log.NewNop())

		st, err := uc.Create(ctx, servicetype.CreateInput{IssueID: 2, Name: " fiber "})
		require.NoError(t, err)
		assert.Equal(t, int64(10), st.ID)
		require.NotNil(t, repo.created)
		assert.Equal(t, repository.CreateServiceTypeOptions{IssueID: 2, Name: "FIBER"}, *repo.created)
		assert.Equal(t, repository.GetOneServiceTypeOptions{IssueID: 2, Name: "FIBER"}, repo.lastLookup)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, issues, log.NewNop())
		for _, in := range []servicetype.CreateInput{{Name: "fiber"}, {IssueID: 2}, {IssueID: 2, Name: "  "}} {
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, servicetype.ErrFieldsRequired)
		}
	})

	t.Run("Unknown Issue", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := usecase.New(repo, issues, log.NewNop())
		_, err := uc.Create(ctx, servicetype.CreateInput{IssueID: 5, Name: "fiber"})
		assert.ErrorIs(t, err, servicetype.ErrIssueNotFound)
		assert.Nil(t, repo.created)
	})

	t.Run("Issue Lookup Fails", func(t *testing.T) {
		dbErr := errors.New("db down")
		uc := usecase.New(&fakeRepo{}, fakeIssueUC{err: dbErr}, log.NewNop())
		_, err := uc.Create(ctx, servicetype.CreateInput{IssueID: 2, Name: "fiber"})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Duplicate Within Issue", func(t *testing.T) {
		repo := &fakeRepo{existing: servicetype.ServiceType{ID: 3}}
		uc := usecase.New(repo, issues, log.NewNop())
		_, err := uc.Create(ctx, servicetype.CreateInput{IssueID: 2, Name: "fiber"})
		assert.ErrorIs(t, err, servicetype.ErrDuplicateName)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	issues := fakeIssueUC{known: map[int64]bool{2: true, 3: true}}

	repo := &fakeRepo{affected: true}
	uc := usecase.New(repo, issues, log.NewNop())
	require.NoError(t, uc.Update(ctx, servicetype.UpdateInput{ID: 7, IssueID: 3, Name: "copper"}))
	assert.Equal(t, int64(7), repo.lastLookup.ExcludeID)
	assert.Equal(t, "COPPER", repo.updated.Name)

	uc = usecase.New(&fakeRepo{affected: false}, issues, log.NewNop())
	assert.ErrorIs(t, uc.Update(ctx, servicetype.UpdateInput{ID: 7, IssueID: 3, Name: "copper"}), servicetype.ErrServiceTypeNotFound)
}

func TestDetailAndDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&fakeRepo{}, fakeIssueUC{}, log.NewNop())

	_, err := uc.Detail(ctx, 1)
	assert.ErrorIs(t, err, servicetype.ErrServiceTypeNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 1), servicetype.ErrServiceTypeNotFound)

	sts, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NO SIGNAL", sts[0].IssueType)
}
