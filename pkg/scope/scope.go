package scope

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager issues and verifies access and refresh tokens.
type Manager interface {
	CreateAccessToken(p Payload) (string, error)
	CreateRefreshToken(userID int64) (string, error)
	VerifyAccessToken(token string) (Payload, error)
	VerifyRefreshToken(token string) (int64, error)
}

type implManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// New creates a Manager. Both secrets are required and must differ so that a
// leaked refresh secret cannot be used to mint access tokens.
func New(cfg Config) (Manager, error) {
	access := strings.TrimSpace(cfg.AccessSecret)
	refresh := strings.TrimSpace(cfg.RefreshSecret)
	if access == "" || refresh == "" {
		return nil, ErrMissingSecret
	}
	if access == refresh {
		return nil, ErrSharedSecret
	}

	m := &implManager{
		accessSecret:  []byte(access),
		refreshSecret: []byte(refresh),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}
	if m.accessTTL <= 0 {
		m.accessTTL = DefaultAccessTTL
	}
	if m.refreshTTL <= 0 {
		m.refreshTTL = DefaultRefreshTTL
	}
	return m, nil
}

func (m *implManager) CreateAccessToken(p Payload) (string, error) {
	if p.UserID == 0 {
		return "", ErrMissingSubject
	}
	claims := accessClaims{
		ID:               p.UserID,
		Role:             p.RoleID,
		IsTeamMember:     p.IsTeamMember,
		Name:             p.Name,
		RegisteredClaims: m.registered(m.accessTTL),
	}
	return m.sign(claims, m.accessSecret)
}

func (m *implManager) CreateRefreshToken(userID int64) (string, error) {
	if userID == 0 {
		return "", ErrMissingSubject
	}
	claims := refreshClaims{
		ID:               userID,
		RegisteredClaims: m.registered(m.refreshTTL),
	}
	return m.sign(claims, m.refreshSecret)
}

func (m *implManager) VerifyAccessToken(token string) (Payload, error) {
	var claims accessClaims
	if err := m.parse(token, &claims, m.accessSecret); err != nil {
		return Payload{}, err
	}
	if claims.ID == 0 {
		return Payload{}, ErrInvalidToken
	}
	return Payload{
		UserID:       claims.ID,
		RoleID:       claims.Role,
		IsTeamMember: claims.IsTeamMember,
		Name:         claims.Name,
	}, nil
}

func (m *implManager) VerifyRefreshToken(token string) (int64, error) {
	var claims refreshClaims
	if err := m.parse(token, &claims, m.refreshSecret); err != nil {
		return 0, err
	}
	if claims.ID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.ID, nil
}

func (m *implManager) registered(ttl time.Duration) jwt.RegisteredClaims {
	now := m.now().UTC()
	return jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (m *implManager) sign(claims jwt.Claims, secret []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) parse(token string, claims jwt.Claims, secret []byte) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return secret, nil
	},
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}
