package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/internal/auth"
	"github.com/pkordes/itinerary-planner/internal/domain"
)

// tokenIssuer is the part of *auth.Issuer SessionService needs.
type tokenIssuer interface {
	Issue(subject string, guest bool) (string, auth.Session, error)
}

// SessionService starts sessions. A session with an email is a named
// session whose trips follow that address across tokens; a session without
// one is a guest session with a fresh random subject.
type SessionService struct {
	issuer tokenIssuer
}

// NewSessionService constructs a SessionService that signs with issuer.
func NewSessionService(issuer tokenIssuer) *SessionService {
	return &SessionService{issuer: issuer}
}

// Start issues a token for email, or a guest token when email is empty.
// Returns domain.ErrValidation if email is not a valid address.
func (s *SessionService) Start(_ context.Context, email string) (string, auth.Session, error) {
	subject, guest := "guest-"+uuid.NewString(), true
	if email = strings.TrimSpace(email); email != "" {
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return "", auth.Session{}, fmt.Errorf("%w: email %q is not a valid address", domain.ErrValidation, email)
		}
		subject, guest = strings.ToLower(addr.Address), false
	}

	token, sess, err := s.issuer.Issue(subject, guest)
	if err != nil {
		return "", auth.Session{}, fmt.Errorf("service.SessionService.Start: %w", err)
	}
	return token, sess, nil
}
