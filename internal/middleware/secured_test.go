package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/itinerary-planner/internal/handler/gen"
	"github.com/pkordes/itinerary-planner/internal/middleware"
)

// denyAll rejects every request it sees.
func denyAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func TestSecuredOnly(t *testing.T) {
	h := middleware.SecuredOnly(denyAll)(okHandler)

	t.Run("public operation skips the middleware", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("secured operation runs it", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/trips", nil)
		req = req.WithContext(context.WithValue(req.Context(), gen.BearerAuthScopes, []string{}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
