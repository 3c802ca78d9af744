package usecase

import (
	"context"
	"strings"

	"complaint-management/internal/issue"
	repo "complaint-management/internal/issue/repository"
)

func normalizeType(raw string) (string, error) {
	typ := strings.TrimSpace(raw)
	if typ == "" {
		return "", issue.ErrTypeRequired
	}
	return strings.ToUpper(typ), nil
}

func (uc *implUseCase) Create(ctx context.Context, input issue.CreateInput) (issue.Issue, error) {
	typ, err := normalizeType(input.Type)
	if err != nil {
		return issue.Issue{}, err
	}

	existing, err := uc.repo.GetOneIssue(ctx, repo.GetOneIssueOptions{Type: typ})
	if err != nil {
		uc.l.Errorf(ctx, "issue.usecase.Create.GetOneIssue: %v", err)
		return issue.Issue{}, err
	}
	if existing.ID != 0 {
		return issue.Issue{}, issue.ErrDuplicateType
	}

	id, err := uc.repo.CreateIssue(ctx, repo.CreateIssueOptions{Type: typ})
	if err != nil {
		uc.l.Errorf(ctx, "issue.usecase.Create.CreateIssue: %v", err)
		return issue.Issue{}, err
	}
	return issue.Issue{ID: id, Type: typ}, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]issue.Issue, error) {
	issues, err := uc.repo.ListIssues(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "issue.usecase.List.ListIssues: %v", err)
		return nil, err
	}
	return issues, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (issue.Issue, error) {
	it, err := uc.repo.GetOneIssue(ctx, repo.GetOneIssueOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "issue.usecase.Detail.GetOneIssue: %v", err)
		return issue.Issue{}, err
	}
	if it.ID == 0 {
		return issue.Issue{}, issue.ErrIssueNotFound
	}
	return it, nil
}

func (uc *implUseCase) Update(ctx context.Context, input issue.UpdateInput) error {
	typ, err := normalizeType(input.Type)
	if err != nil {
		return err
	}

	existing, err := uc.repo.GetOneIssue(ctx, repo.GetOneIssueOptions{Type: typ, ExcludeID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "issue.usecase.Update.GetOneIssue: %v", err)
		return err
	}
	if existing.ID != 0 {
		return issue.ErrDuplicateType
	}

	ok, err := uc.repo.UpdateIssue(ctx, repo.UpdateIssueOptions{ID: input.ID, Type: typ})
	if err != nil {
		uc.l.Errorf(ctx, "issue.usecase.Update.UpdateIssue: %v", err)
		return err
	}
	if !ok {
		return issue.ErrIssueNotFound
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.DeleteIssue(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "issue.usecase.Delete.DeleteIssue: %v", err)
		return err
	}
	if !ok {
		return issue.ErrIssueNotFound
	}
	return nil
}
