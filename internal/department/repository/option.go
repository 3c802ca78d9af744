package repository

type CreateDepartmentOptions struct {
	Name string
}

type GetOneDepartmentOptions struct {
	ID        int64
	Name      string
	ExcludeID int64
}

type UpdateDepartmentOptions struct {
	ID   int64
	Name string
}
