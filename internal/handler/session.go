package handler

import (
	"context"
	"errors"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// CreateSession handles POST /sessions.
// An email starts a named session; no body, an empty email, or guest=true
// starts a guest session.
func (s *Server) CreateSession(ctx context.Context, req gen.CreateSessionRequestObject) (gen.CreateSessionResponseObject, error) {
	var email string
	if req.Body != nil && !derefBool(req.Body.Guest) {
		email = derefString(req.Body.Email)
	}

	token, sess, err := s.sessions.Start(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateSession422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateSession201JSONResponse{
		Token:     token,
		Subject:   sess.Subject,
		Guest:     sess.Guest,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}
