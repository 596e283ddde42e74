package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ctxKey struct{}

// WithOwner returns a copy of ctx carrying the session subject.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ctxKey{}, owner)
}

// OwnerFromContext returns the session subject stored by Middleware.
func OwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(ctxKey{}).(string)
	return owner, ok && owner != ""
}

// Middleware rejects requests without a valid bearer token with 401 and
// stores the token subject in the request context for the rest.
func Middleware(iss *Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerFromHeader(r.Header.Get("Authorization"))
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}
			sess, err := iss.Parse(token)
			if err != nil {
				unauthorized(w, "invalid or expired session token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), sess.Subject)))
		})
	}
}

func bearerFromHeader(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// unauthorized writes the same error envelope the API handlers use.
func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="itinerary"`)
	w.WriteHeader(http.StatusUnauthorized)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	body.Error.Code = "unauthorized"
	body.Error.Message = msg
	_ = json.NewEncoder(w).Encode(body)
}
