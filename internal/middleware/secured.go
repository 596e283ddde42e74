package middleware

import (
	"net/http"

	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// SecuredOnly applies mw only to operations the API document marks with
// bearerAuth. The generated wrapper tags those requests with
// gen.BearerAuthScopes before running its per-operation middlewares, so
// public operations such as /healthz and /sessions pass straight through.
//
// Install it through gen.ChiServerOptions.Middlewares, not on the router:
// the tag does not exist yet at router level.
func SecuredOnly(mw func(http.Handler) http.Handler) gen.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		secured := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Context().Value(gen.BearerAuthScopes) == nil {
				next.ServeHTTP(w, r)
				return
			}
			secured.ServeHTTP(w, r)
		})
	}
}
