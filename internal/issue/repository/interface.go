package repository

import (
	"context"

	"complaint-management/internal/issue"
)

type Repository interface {
	CreateIssue(ctx context.Context, opt CreateIssueOptions) (int64, error)
	// GetOneIssue returns the zero Issue when nothing matches.
	GetOneIssue(ctx context.Context, opt GetOneIssueOptions) (issue.Issue, error)
	ListIssues(ctx context.Context) ([]issue.Issue, error)
	UpdateIssue(ctx context.Context, opt UpdateIssueOptions) (bool, error)
	DeleteIssue(ctx context.Context, id int64) (bool, error)
}
