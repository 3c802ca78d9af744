package usecase

import (
	"context"
	"strings"

	"complaint-management/internal/complaint"
	repo "complaint-management/internal/complaint/repository"
)

// Create files a complaint for input.UserID. A detail made only of spaces
// is rejected separately from a missing one.
func (uc *implUseCase) Create(ctx context.Context, input complaint.CreateInput) (int64, error) {
	if input.DepartmentID == 0 || input.IssueID == 0 || input.Detail == "" || input.UserID == 0 {
		return 0, complaint.ErrFieldsRequired
	}
	detail := strings.TrimSpace(input.Detail)
	if detail == "" {
		return 0, complaint.ErrEmptyDetail
	}
	status := input.Status
	if status == "" {
		status = complaint.DefaultStatus
	}

	id, err := uc.repo.CreateComplaint(ctx, repo.CreateComplaintOptions{
		DepartmentID: input.DepartmentID,
		IssueID:      input.IssueID,
		UserID:       input.UserID,
		Detail:       detail,
		Status:       status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "complaint.usecase.Create.CreateComplaint: %v", err)
		return 0, err
	}
	return id, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]complaint.Complaint, error) {
	cs, err := uc.repo.ListComplaints(ctx, repo.ListComplaintsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "complaint.usecase.List.ListComplaints: %v", err)
		return nil, err
	}
	return cs, nil
}

func (uc *implUseCase) ListByUser(ctx context.Context, userID int64) ([]complaint.Complaint, error) {
	cs, err := uc.repo.ListComplaints(ctx, repo.ListComplaintsOptions{UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "complaint.usecase.ListByUser.ListComplaints: %v", err)
		return nil, err
	}
	if len(cs) == 0 {
		return nil, complaint.ErrNoUserComplaints
	}
	return cs, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (complaint.Complaint, error) {
	c, err := uc.repo.GetOneComplaint(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "complaint.usecase.Detail.GetOneComplaint: %v", err)
		return complaint.Complaint{}, err
	}
	if c.ID == 0 {
		return complaint.Complaint{}, complaint.ErrComplaintNotFound
	}
	return c, nil
}

func (uc *implUseCase) Update(ctx context.Context, input complaint.UpdateInput) error {
	if input.DepartmentID == nil && input.IssueID == nil && input.Detail == nil && input.Status == nil {
		return complaint.ErrNoUpdateFields
	}

	opt := repo.UpdateComplaintOptions{
		ID:           input.ID,
		DepartmentID: input.DepartmentID,
		IssueID:      input.IssueID,
		Status:       input.Status,
	}
	if input.Detail != nil {
		detail := strings.TrimSpace(*input.Detail)
		if detail == "" {
			return complaint.ErrEmptyDetail
		}
		opt.Detail = &detail
	}

	ok, err := uc.repo.UpdateComplaint(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "complaint.usecase.Update.UpdateComplaint: %v", err)
		return err
	}
	if !ok {
		return complaint.ErrComplaintNotFound
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.DeleteComplaint(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "complaint.usecase.Delete.DeleteComplaint: %v", err)
		return err
	}
	if !ok {
		return complaint.ErrComplaintNotFound
	}
	return nil
}
