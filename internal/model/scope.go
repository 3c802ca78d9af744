package model

// Scope is the identity of an authenticated caller, decoded from an access
// token on every request.
type Scope struct {
	UserID       int64
	RoleID       int64
	IsTeamMember bool
	Name         string
}
