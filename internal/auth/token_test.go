package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedIssuer(secret string, ttl time.Duration, at time.Time) *Issuer {
	iss := NewIssuer(secret, ttl)
	iss.now = func() time.Time { return at }
	return iss
}

func TestIssuer_IssueAndParse(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	iss := fixedIssuer("s3cret", time.Hour, at)

	token, sess, err := iss.Issue("alice@example.com", false)
	require.NoError(t, err)
	assert.Equal(t, at.Add(time.Hour), sess.ExpiresAt)

	got, err := iss.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Subject)
	assert.False(t, got.Guest)
	assert.True(t, got.ExpiresAt.Equal(sess.ExpiresAt))
}

func TestIssuer_GuestFlagRoundTrips(t *testing.T) {
	iss := NewIssuer("s3cret", time.Hour)

	token, _, err := iss.Issue("guest-1", true)
	require.NoError(t, err)

	got, err := iss.Parse(token)
	require.NoError(t, err)
	assert.True(t, got.Guest)
}

func TestIssuer_Parse_Expired(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token, _, err := fixedIssuer("s3cret", time.Minute, at).Issue("bob", false)
	require.NoError(t, err)

	_, err = fixedIssuer("s3cret", time.Minute, at.Add(2*time.Minute)).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Parse_WrongKey(t *testing.T) {
	token, _, err := NewIssuer("one", time.Hour).Issue("bob", false)
	require.NoError(t, err)

	_, err = NewIssuer("two", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Parse_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "mallory",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = NewIssuer("s3cret", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Parse_Garbage(t *testing.T) {
	_, err := NewIssuer("s3cret", time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerFromHeader(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer abc":   "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"":             "",
		"Bearer  abc ": "abc",
	}
	for header, want := range cases {
		assert.Equal(t, want, bearerFromHeader(header), "header %q", header)
	}
}
