package repository

type CreateIssueOptions struct {
	Type string
}

type GetOneIssueOptions struct {
	ID        int64
	Type      string
	ExcludeID int64
}

type UpdateIssueOptions struct {
	ID   int64
	Type string
}
