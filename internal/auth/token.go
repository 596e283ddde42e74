// Package auth issues and verifies session tokens and guards routes with them.
//
// A session is either a guest session or a named one (an email address).
// There is no credential check: a token only scopes which trips the caller
// can see.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Parse for tokens that are malformed,
// expired, or signed with another key.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload. The session subject lives in the registered
// "sub" claim.
type Claims struct {
	Guest bool `json:"guest"`
	jwt.RegisteredClaims
}

// Session is the verified identity behind a token.
type Session struct {
	Subject   string
	Guest     bool
	ExpiresAt time.Time
}

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer returns an Issuer whose tokens expire ttl after issue.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for subject.
func (i *Issuer) Issue(subject string, guest bool) (string, Session, error) {
	now := i.now()
	sess := Session{Subject: subject, Guest: guest, ExpiresAt: now.Add(i.ttl).Truncate(time.Second)}

	claims := Claims{
		Guest: guest,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("auth.Issuer.Issue: %w", err)
	}
	return signed, sess, nil
}

// Parse verifies token and returns its session.
// Returns ErrInvalidToken for any token that does not verify.
func (i *Issuer) Parse(token string) (Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return Session{}, ErrInvalidToken
	}
	return Session{
		Subject:   claims.Subject,
		Guest:     claims.Guest,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
