package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("0123456789abcdef", time.Hour)

	token, expires, err := iss.Issue(Session{AdminID: "a1", Name: "Sam Ops", Role: "support", BackendToken: "bt"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	s, err := iss.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a1", s.AdminID)
	assert.Equal(t, "support", s.Role)
	assert.Equal(t, "bt", s.BackendToken)
	assert.Equal(t, "a1", s.Subject)
}

func TestParseRejectsExpired(t *testing.T) {
	iss := NewIssuer("0123456789abcdef", time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := iss.Issue(Session{AdminID: "a1", BackendToken: "bt"})
	require.NoError(t, err)

	_, err = iss.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseRejectsOtherSecretAndAlg(t *testing.T) {
	token, _, err := NewIssuer("another-secret-value", time.Hour).Issue(Session{AdminID: "a1", BackendToken: "bt"})
	require.NoError(t, err)
	_, err = NewIssuer("0123456789abcdef", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Session{AdminID: "a1", BackendToken: "bt"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewIssuer("0123456789abcdef", time.Hour).Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseRejectsSessionWithoutBackendToken(t *testing.T) {
	iss := NewIssuer("0123456789abcdef", time.Hour)
	token, _, err := iss.Issue(Session{AdminID: "a1"})
	require.NoError(t, err)

	_, err = iss.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
