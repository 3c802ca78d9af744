package encrypter

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password is empty")

// Encrypter hashes passwords and compares them against stored hashes.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) bool
}

type implEncrypter struct {
	cost int
}

// New returns a bcrypt Encrypter. A cost outside bcrypt's range falls back to
// bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &implEncrypter{cost: cost}
}

func (e *implEncrypter) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e *implEncrypter) ComparePassword(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
