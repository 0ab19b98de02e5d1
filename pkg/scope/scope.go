// Package scope issues and verifies admin access tokens.
package scope

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const TokenType = "bearer"

var (
	ErrInvalidToken = errors.New("scope: invalid token")
	ErrEmptySecret  = errors.New("scope: jwt secret is empty")
)

// Payload is the verified content of a token.
type Payload struct {
	AdminID   uint
	ExpiresAt time.Time
}

// Manager creates and verifies HS256 tokens whose subject is the admin id.
type Manager interface {
	CreateToken(adminID uint) (string, time.Time, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates a Manager. A non-positive ttl means one hour.
func New(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &implManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *implManager) CreateToken(adminID uint) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(adminID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("scope: sign token: %w", err)
	}
	return signed, exp, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return Payload{}, fmt.Errorf("%w: missing exp", ErrInvalidToken)
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return Payload{}, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}
	return Payload{AdminID: uint(id), ExpiresAt: claims.ExpiresAt.Time}, nil
}
