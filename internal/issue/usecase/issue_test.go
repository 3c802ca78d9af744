package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaint-management/internal/issue"
	"complaint-management/internal/issue/repository"
	"complaint-management/internal/issue/usecase"
	"complaint-management/pkg/log"
)

// memRepo keeps issues in a map keyed by id.
type memRepo struct {
	rows   map[int64]issue.Issue
	nextID int64
}

func newMemRepo(names ...string) *memRepo {
	m := &memRepo{rows: map[int64]issue.Issue{}}
	for _, n := range names {
		m.nextID++
		m.rows[m.nextID] = issue.Issue{ID: m.nextID, Type: n}
	}
	return m
}

func (m *memRepo) CreateIssue(ctx context.Context, opt repository.CreateIssueOptions) (int64, error) {
	m.nextID++
	m.rows[m.nextID] = issue.Issue{ID: m.nextID, Type: opt.Type}
	return m.nextID, nil
}

func (m *memRepo) GetOneIssue(ctx context.Context, opt repository.GetOneIssueOptions) (issue.Issue, error) {
	for _, it := range m.rows {
		if opt.ID != 0 && it.ID != opt.ID {
			continue
		}
		if opt.Type != "" && it.Type != opt.Type {
			continue
		}
		if opt.ExcludeID != 0 && it.ID == opt.ExcludeID {
			continue
		}
		return it, nil
	}
	return issue.Issue{}, nil
}

func (m *memRepo) ListIssues(ctx context.Context) ([]issue.Issue, error) {
	out := make([]issue.Issue, 0, len(m.rows))
	for i := int64(1); i <= m.nextID; i++ {
		if it, ok := m.rows[i]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateIssue(ctx context.Context, opt repository.UpdateIssueOptions) (bool, error) {
	it, ok := m.rows[opt.ID]
	if !ok {
		return false, nil
	}
	it.Type = opt.Type
	m.rows[opt.ID] = it
	return true, nil
}

func (m *memRepo) DeleteIssue(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func TestIssueLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo("BILLING")
	uc := usecase.New(repo, log.NewNop())

	it, err := uc.Create(ctx, issue.CreateInput{Type: "  no signal "})
	require.NoError(t, err)
	assert.Equal(t, "NO SIGNAL", it.Type)

	_, err = uc.Create(ctx, issue.CreateInput{Type: "Billing"})
	assert.ErrorIs(t, err, issue.ErrDuplicateType)

	_, err = uc.Create(ctx, issue.CreateInput{Type: "   "})
	assert.ErrorIs(t, err, issue.ErrTypeRequired)

	issues, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, issues, 2)

	require.NoError(t, uc.Update(ctx, issue.UpdateInput{ID: it.ID, Type: "no signal"}))
	assert.ErrorIs(t, uc.Update(ctx, issue.UpdateInput{ID: it.ID, Type: "billing"}), issue.ErrDuplicateType)
	assert.ErrorIs(t, uc.Update(ctx, issue.UpdateInput{ID: 99, Type: "slow speed"}), issue.ErrIssueNotFound)
	assert.ErrorIs(t, uc.Update(ctx, issue.UpdateInput{ID: it.ID, Type: ""}), issue.ErrTypeRequired)

	got, err := uc.Detail(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "NO SIGNAL", got.Type)

	require.NoError(t, uc.Delete(ctx, it.ID))
	assert.ErrorIs(t, uc.Delete(ctx, it.ID), issue.ErrIssueNotFound)
	_, err = uc.Detail(ctx, it.ID)
	assert.ErrorIs(t, err, issue.ErrIssueNotFound)
}
