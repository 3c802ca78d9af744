package repository

type CreateServiceTypeOptions struct {
	IssueID int64
	Name    string
}

// GetOneServiceTypeOptions filters are ANDed; zero values are ignored.
type GetOneServiceTypeOptions struct {
	ID        int64
	IssueID   int64
	Name      string
	ExcludeID int64
}

type UpdateServiceTypeOptions struct {
	ID      int64
	IssueID int64
	Name    string
}
