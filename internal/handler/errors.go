package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// ErrNoSession is returned by handlers of secured operations reached without
// an authenticated owner in the request context. ResponseErrorHandler turns
// it into 401.
var ErrNoSession = errors.New("no session")

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// notFoundMessage picks the 404 text: "day not found" when the wrapped error
// names a day, "trip not found" otherwise.
func notFoundMessage(err error) string {
	if strings.Contains(err.Error(), "day ") {
		return "day not found"
	}
	return "trip not found"
}

// RequestErrorHandler answers requests the generated router rejects before
// a handler runs, such as malformed JSON or an unparsable path parameter.
// A body cut off by middleware.NewMaxBodySizeHandler answers 413.
// Use it for both ChiServerOptions.ErrorHandlerFunc and
// StrictHTTPServerOptions.RequestErrorHandlerFunc.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "bad_request", err.Error())
}

// ResponseErrorHandler returns the StrictHTTPServerOptions hook for errors
// returned by handlers. ErrNoSession becomes 401; anything else is logged
// and becomes a 500 without leaking its text.
func ResponseErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if errors.Is(err, ErrNoSession) {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing session")
			return
		}
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}})
}
