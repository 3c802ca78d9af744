package usecase

import (
	"strings"

	"complaint-management/internal/user"
	"complaint-management/pkg/scope"
)

const initialPasswordLen = 4

// initialPassword is the last four characters of the phone number.
func initialPassword(phone string) string {
	r := []rune(phone)
	if len(r) <= initialPasswordLen {
		return phone
	}
	return string(r[len(r)-initialPasswordLen:])
}

// coalesce returns the trimmed new value when one was sent and is non-empty.
func coalesce(newVal *string, existing string) string {
	if newVal == nil {
		return existing
	}
	if v := strings.TrimSpace(*newVal); v != "" {
		return v
	}
	return existing
}

func payloadOf(u user.User) scope.Payload {
	return scope.Payload{
		UserID:       u.ID,
		RoleID:       u.RoleID,
		IsTeamMember: u.IsTeamMember,
		Name:         u.Name,
	}
}
