package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/tidyhome/dashboard-api/internal/domain"
)

// SessionIDHeader names the dashboard session a request acts on
const SessionIDHeader = "X-Session-ID"

type sessionKey struct{}

// SessionLookup reports whether a session ID is live. Implemented by session.Store.
type SessionLookup interface {
	Exists(id string) bool
}

var errNoSession = errors.New("no session in context")

// RequireSession rejects requests without a live session in the
// X-Session-ID header and stores the ID in the request context
func RequireSession(sessions SessionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionIDHeader)
			if id == "" {
				writeAPIError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, SessionIDHeader+" header is required")
				return
			}
			if !sessions.Exists(id) {
				writeAPIError(w, http.StatusNotFound, domain.ErrorTypeNotFound, "Session not found or expired")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, id)))
		})
	}
}

// SessionIDFromContext returns the session ID stored by RequireSession
func SessionIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(sessionKey{}).(string)
	if !ok || id == "" {
		return "", errNoSession
	}
	return id, nil
}
