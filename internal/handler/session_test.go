package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/auth"
	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// recordingSessions captures the email each Start call receives.
func recordingSessions(got *string) *mockSessionServicer {
	return &mockSessionServicer{
		start: func(_ context.Context, email string) (string, auth.Session, error) {
			*got = email
			if email == "" {
				return "tok", auth.Session{Subject: "guest-1", Guest: true, ExpiresAt: time.Now()}, nil
			}
			return "tok", auth.Session{Subject: email, ExpiresAt: time.Now()}, nil
		},
	}
}

func TestCreateSession(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantEmail string
		wantGuest bool
	}{
		{"named", `{"email":"bob@example.com"}`, "bob@example.com", false},
		{"empty object", `{}`, "", true},
		{"no body", ``, "", true},
		{"guest wins over email", `{"email":"bob@example.com","guest":true}`, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			srv := handler.NewServer(nil, nil, recordingSessions(&got), nil)

			req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			gen.Handler(gen.NewStrictHandler(srv, nil)).ServeHTTP(rec, req)

			require.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, tc.wantEmail, got)

			var resp gen.Session
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "tok", resp.Token)
			assert.Equal(t, tc.wantGuest, resp.Guest)
		})
	}
}

func TestCreateSession_422_InvalidEmail(t *testing.T) {
	srv := handler.NewServer(nil, nil, &mockSessionServicer{
		start: func(context.Context, string) (string, auth.Session, error) {
			return "", auth.Session{}, fmt.Errorf("%w: email \"x\" is not a valid address", domain.ErrValidation)
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(`{"email":"x"}`))
	rec := httptest.NewRecorder()
	gen.Handler(gen.NewStrictHandler(srv, nil)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, `email "x" is not a valid address`, resp.Error.Message)
}
