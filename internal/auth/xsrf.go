package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// XSRFCookieName is the cookie set on reads.
	XSRFCookieName = "XSRF-TOKEN"
	// XSRFHeaderName is the header writes must echo the cookie in.
	XSRFHeaderName = "X-XSRF-TOKEN"
)

// XSRFManager issues and validates signed anti-forgery tokens.
type XSRFManager struct {
	secret []byte
	ttl    time.Duration
}

// NewXSRFManager creates a new XSRF token manager.
func NewXSRFManager(secret string, ttl time.Duration) *XSRFManager {
	return &XSRFManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns how long an issued token stays valid.
func (m *XSRFManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed token with a random id.
func (m *XSRFManager) Issue() (string, error) {
	now := time.Now().UTC()

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign xsrf token: %w", err)
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token.
func (m *XSRFManager) Validate(tokenStr string) error {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Ensure token is signed using HS256
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %T", t.Method)
		}
		return m.secret, nil
	})
	if err != nil {
		return fmt.Errorf("failed to parse xsrf token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return errors.New("invalid xsrf token")
	}

	return nil
}
