package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingSecret  = errors.New("scope: access and refresh secrets are required")
	ErrSharedSecret   = errors.New("scope: access and refresh secrets must differ")
	ErrMissingSubject = errors.New("scope: user id is required")
)

// Payload is the identity carried by an access token.
type Payload struct {
	UserID       int64
	RoleID       int64
	IsTeamMember bool
	Name         string
}

// Config holds the signing secrets and lifetimes of both token kinds.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type accessClaims struct {
	ID           int64  `json:"id"`
	Role         int64  `json:"role"`
	IsTeamMember bool   `json:"is_team_member"`
	Name         string `json:"name"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}
