package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaint-management/internal/role"
	"complaint-management/internal/role/repository"
	"complaint-management/internal/role/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	getOne  func(opt repository.GetOneRoleOptions) (role.Role, error)
	created []repository.CreateRoleOptions
	updated []repository.UpdateRoleOptions
	found   bool
	fail    error
}

func (m *mockRepo) CreateRole(ctx context.Context, opt repository.CreateRoleOptions) (int64, error) {
	if m.fail != nil {
		return 0, m.fail
	}
	m.created = append(m.created, opt)
	return int64(len(m.created)), nil
}

func (m *mockRepo) GetOneRole(ctx context.Context, opt repository.GetOneRoleOptions) (role.Role, error) {
	if m.getOne == nil {
		return role.Role{}, nil
	}
	return m.getOne(opt)
}

func (m *mockRepo) ListRoles(ctx context.Context) ([]role.Role, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	return []role.Role{{ID: 1, Name: "ADMIN"}, {ID: 2, Name: "STAFF"}}, nil
}

func (m *mockRepo) UpdateRole(ctx context.Context, opt repository.UpdateRoleOptions) (bool, error) {
	if m.fail != nil {
		return false, m.fail
	}
	m.updated = append(m.updated, opt)
	return m.found, nil
}

func (m *mockRepo) DeleteRole(ctx context.Context, id int64) (bool, error) {
	if m.fail != nil {
		return false, m.fail
	}
	return m.found, nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes Name", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(repo, &mockLogger{})

		r, err := uc.Create(ctx, role.CreateInput{Name: "  admin "})
		require.NoError(t, err)
		assert.Equal(t, "ADMIN", r.Name)
		require.Len(t, repo.created, 1)
		assert.Equal(t, "ADMIN", repo.created[0].Name)
	})

	t.Run("Invalid Names", func(t *testing.T) {
		for _, name := range []string{"", "   ", "admin1", "head office", "r&d"} {
			repo := &mockRepo{}
			uc := usecase.New(repo, &mockLogger{})

			_, err := uc.Create(ctx, role.CreateInput{Name: name})
			assert.ErrorIs(t, err, role.ErrInvalidName, "name %q", name)
			assert.Empty(t, repo.created)
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := &mockRepo{getOne: func(opt repository.GetOneRoleOptions) (role.Role, error) {
			assert.Equal(t, "ADMIN", opt.Name)
			return role.Role{ID: 4, Name: "ADMIN"}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		_, err := uc.Create(ctx, role.CreateInput{Name: "Admin"})
		assert.ErrorIs(t, err, role.ErrDuplicateName)
		assert.Empty(t, repo.created)
	})

	t.Run("Repository Error", func(t *testing.T) {
		dbErr := errors.New("db down")
		uc := usecase.New(&mockRepo{fail: dbErr}, &mockLogger{})

		_, err := uc.Create(ctx, role.CreateInput{Name: "admin"})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepo{getOne: func(opt repository.GetOneRoleOptions) (role.Role, error) {
		if opt.ID == 1 {
			return role.Role{ID: 1, Name: "ADMIN"}, nil
		}
		return role.Role{}, nil
	}}
	uc := usecase.New(repo, &mockLogger{})

	r, err := uc.Detail(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", r.Name)

	_, err = uc.Detail(ctx, 2)
	assert.ErrorIs(t, err, role.ErrRoleNotFound)
}

func TestList(t *testing.T) {
	uc := usecase.New(&mockRepo{}, &mockLogger{})

	roles, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 2)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Excludes Self From Duplicate Check", func(t *testing.T) {
		var seen repository.GetOneRoleOptions
		repo := &mockRepo{found: true, getOne: func(opt repository.GetOneRoleOptions) (role.Role, error) {
			seen = opt
			return role.Role{}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		require.NoError(t, uc.Update(ctx, role.UpdateInput{ID: 3, Name: "manager"}))
		assert.Equal(t, repository.GetOneRoleOptions{Name: "MANAGER", ExcludeID: 3}, seen)
		assert.Equal(t, []repository.UpdateRoleOptions{{ID: 3, Name: "MANAGER"}}, repo.updated)
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := &mockRepo{found: true, getOne: func(opt repository.GetOneRoleOptions) (role.Role, error) {
			return role.Role{ID: 9, Name: opt.Name}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		assert.ErrorIs(t, uc.Update(ctx, role.UpdateInput{ID: 3, Name: "manager"}), role.ErrDuplicateName)
		assert.Empty(t, repo.updated)
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockRepo{found: false}, &mockLogger{})
		assert.ErrorIs(t, uc.Update(ctx, role.UpdateInput{ID: 3, Name: "manager"}), role.ErrRoleNotFound)
	})

	t.Run("Invalid Name", func(t *testing.T) {
		uc := usecase.New(&mockRepo{found: true}, &mockLogger{})
		assert.ErrorIs(t, uc.Update(ctx, role.UpdateInput{ID: 3, Name: "m4nager"}), role.ErrInvalidName)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, usecase.New(&mockRepo{found: true}, &mockLogger{}).Delete(ctx, 1))
	assert.ErrorIs(t, usecase.New(&mockRepo{found: false}, &mockLogger{}).Delete(ctx, 1), role.ErrRoleNotFound)
}
