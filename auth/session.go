// Package auth issues and verifies the portal's session tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Session is what the portal knows about the signed-in admin. BackendToken
// is the STREET API access token used for every backend call.
type Session struct {
	AdminID      string `json:"adminId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	BackendToken string `json:"bt"`
	jwt.RegisteredClaims
}

var ErrInvalidSession = errors.New("invalid or expired session")

// Issuer signs sessions with HS256.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is how long issued sessions stay valid.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs s and returns the token and its expiry.
func (i *Issuer) Issue(s Session) (string, time.Time, error) {
	now := i.now()
	expires := now.Add(i.ttl)
	s.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   s.AdminID,
		Issuer:    "street-admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, s)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies a session token.
func (i *Issuer) Parse(tokenStr string) (*Session, error) {
	claims := &Session{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.AdminID == "" || claims.BackendToken == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
