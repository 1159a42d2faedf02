package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/jbarros/go-timeclock-server/authn"
)

type contextKey string

const identityKey contextKey = "identity"

// RequireAuth verifies the bearer token and stores the caller's identity on
// the request context.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, ok := s.authenticate(w, r)
			if !ok {
				return
			}
			next(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
		}
	}
}

// RequireAdmin is RequireAuth plus an ADMIN role check.
func (s *Server) RequireAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity, ok := s.authenticate(w, r)
			if !ok {
				return
			}
			if identity.Role != "ADMIN" {
				writeError(w, r, http.StatusForbidden, "admin access required")
				return
			}
			next(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
		}
	}
}

func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (*authn.Identity, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		writeError(w, r, http.StatusUnauthorized, "missing bearer token")
		return nil, false
	}

	identity, err := s.auth.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "invalid access token")
		return nil, false
	}
	return identity, true
}

// identityFrom returns the authenticated caller set by RequireAuth.
func identityFrom(r *http.Request) *authn.Identity {
	identity, _ := r.Context().Value(identityKey).(*authn.Identity)
	return identity
}
