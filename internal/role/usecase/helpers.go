package usecase

import (
	"strings"

	"complaint-management/internal/role"
)

// normalizeName checks the raw name is alphabetic once trimmed and returns
// its stored form.
func (uc *implUseCase) normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if err := uc.validate.Var(name, "required,alpha"); err != nil {
		return "", role.ErrInvalidName
	}
	return strings.ToUpper(name), nil
}
