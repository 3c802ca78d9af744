package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaint-management/internal/complaint"
	"complaint-management/internal/complaint/repository"
	"complaint-management/internal/complaint/usecase"
	"complaint-management/pkg/log"
)

type memRepo struct {
	rows   map[int64]complaint.Complaint
	nextID int64
	fail   error
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[int64]complaint.Complaint{}}
}

func (m *memRepo) CreateComplaint(ctx context.Context, opt repository.CreateComplaintOptions) (int64, error) {
	if m.fail != nil {
		return 0, m.fail
	}
	m.nextID++
	m.rows[m.nextID] = complaint.Complaint{
		ID:           m.nextID,
		DepartmentID: opt.DepartmentID,
		IssueID:      opt.IssueID,
		UserID:       opt.UserID,
		Detail:       opt.Detail,
		Status:       opt.Status,
	}
	return m.nextID, nil
}

func (m *memRepo) GetOneComplaint(ctx context.Context, id int64) (complaint.Complaint, error) {
	return m.rows[id], m.fail
}

func (m *memRepo) ListComplaints(ctx context.Context, opt repository.ListComplaintsOptions) ([]complaint.Complaint, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]complaint.Complaint, 0, len(m.rows))
	for i := int64(1); i <= m.nextID; i++ {
		c, ok := m.rows[i]
		if !ok || (opt.UserID != 0 && c.UserID != opt.UserID) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memRepo) UpdateComplaint(ctx context.Context, opt repository.UpdateComplaintOptions) (bool, error) {
	c, ok := m.rows[opt.ID]
	if !ok {
		return false, nil
	}
	if opt.DepartmentID != nil {
		c.DepartmentID = *opt.DepartmentID
	}
	if opt.IssueID != nil {
		c.IssueID = *opt.IssueID
	}
	if opt.Detail != nil {
		c.Detail = *opt.Detail
	}
	if opt.Status != nil {
		c.Status = *opt.Status
	}
	m.rows[opt.ID] = c
	return true, nil
}

func (m *memRepo) DeleteComplaint(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	tests := []struct {
		name  string
		input complaint.CreateInput
		err   error
	}{
		{name: "Missing Department", input: complaint.CreateInput{IssueID: 1, UserID: 1, Detail: "no water"}, err: complaint.ErrFieldsRequired},
		{name: "Missing Issue", input: complaint.CreateInput{DepartmentID: 1, UserID: 1, Detail: "no water"}, err: complaint.ErrFieldsRequired},
		{name: "Missing Detail", input: complaint.CreateInput{DepartmentID: 1, IssueID: 1, UserID: 1}, err: complaint.ErrFieldsRequired},
		{name: "Blank Detail", input: complaint.CreateInput{DepartmentID: 1, IssueID: 1, UserID: 1, Detail: "   "}, err: complaint.ErrEmptyDetail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.New(newMemRepo(), log.NewNop())
			_, err := uc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("Defaults", func(t *testing.T) {
		r := newMemRepo()
		uc := usecase.New(r, log.NewNop())
		id, err := uc.Create(context.Background(), complaint.CreateInput{DepartmentID: 2, IssueID: 3, UserID: 9, Detail: "  no water  "})
		require.NoError(t, err)

		got := r.rows[id]
		assert.Equal(t, "no water", got.Detail)
		assert.Equal(t, complaint.DefaultStatus, got.Status)
		assert.Equal(t, int64(9), got.UserID)
	})

	t.Run("Repository Failure", func(t *testing.T) {
		r := newMemRepo()
		r.fail = errors.New("insert failed")
		uc := usecase.New(r, log.NewNop())
		_, err := uc.Create(context.Background(), complaint.CreateInput{DepartmentID: 2, IssueID: 3, UserID: 9, Detail: "x"})
		assert.EqualError(t, err, "insert failed")
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	uc := usecase.New(r, log.NewNop())

	_, err := uc.ListByUser(ctx, 9)
	assert.ErrorIs(t, err, complaint.ErrNoUserComplaints)

	_, err = uc.Create(ctx, complaint.CreateInput{DepartmentID: 1, IssueID: 1, UserID: 9, Detail: "a"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, complaint.CreateInput{DepartmentID: 1, IssueID: 1, UserID: 4, Detail: "b"})
	require.NoError(t, err)

	mine, err := uc.ListByUser(ctx, 9)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].Detail)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	uc := usecase.New(r, log.NewNop())
	id, err := uc.Create(ctx, complaint.CreateInput{DepartmentID: 1, IssueID: 1, UserID: 9, Detail: "a"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Update(ctx, complaint.UpdateInput{ID: id}), complaint.ErrNoUpdateFields)
	assert.ErrorIs(t, uc.Update(ctx, complaint.UpdateInput{ID: id, Detail: ptr(" ")}), complaint.ErrEmptyDetail)
	assert.ErrorIs(t, uc.Update(ctx, complaint.UpdateInput{ID: 99, Status: ptr("Resolved")}), complaint.ErrComplaintNotFound)

	require.NoError(t, uc.Update(ctx, complaint.UpdateInput{ID: id, Status: ptr("Resolved"), Detail: ptr(" b ")}))
	got, err := uc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Resolved", got.Status)
	assert.Equal(t, "b", got.Detail)
	assert.Equal(t, int64(1), got.DepartmentID)
}

func TestDetailAndDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(newMemRepo(), log.NewNop())

	_, err := uc.Detail(ctx, 1)
	assert.ErrorIs(t, err, complaint.ErrComplaintNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 1), complaint.ErrComplaintNotFound)

	id, err := uc.Create(ctx, complaint.CreateInput{DepartmentID: 1, IssueID: 1, UserID: 9, Detail: "a"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, id))
	_, err = uc.Detail(ctx, id)
	assert.ErrorIs(t, err, complaint.ErrComplaintNotFound)
}
