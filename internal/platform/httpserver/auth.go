package httpserver

import (
	"errors"
	"net/http"

	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/application/queries"
	"github.com/chetanck03/Terminal-Tribe/contexts/identity-access/directory-service/domain/entities"
	"github.com/chetanck03/Terminal-Tribe/internal/platform/identity"
)

// principal is the request actor after token verification and directory role
// resolution. Role comes from the directory record only; a denied resolution
// leaves the caller authenticated but non-privileged.
type principal struct {
	SubjectID string
	Role      entities.Role
	Admin     bool
}

func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (principal, bool) {
	raw, err := identity.FromAuthorizationHeader(r.Header.Get("Authorization"))
	if err != nil {
		s.writeAuthError(w, err)
		return principal{}, false
	}
	verified, err := s.verifier.Verify(raw)
	if err != nil {
		s.writeAuthError(w, err)
		return principal{}, false
	}

	resolution := s.directory.ResolveRole.Execute(r.Context(), queries.ResolveRoleQuery{
		SubjectID: verified.SubjectID,
		Email:     verified.Email,
	})
	return principal{
		SubjectID: verified.SubjectID,
		Role:      resolution.Role,
		Admin:     resolution.IsAdmin(),
	}, true
}

func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (principal, bool) {
	actor, ok := s.authenticate(w, r)
	if !ok {
		return principal{}, false
	}
	if !actor.Admin {
		writeError(w, http.StatusForbidden, "admin role required")
		return principal{}, false
	}
	return actor, true
}

func (s *Server) writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrMissingCredential):
		writeError(w, http.StatusUnauthorized, "authorization bearer token is required")
	case errors.Is(err, identity.ErrExpiredCredential):
		writeError(w, http.StatusUnauthorized, "bearer token is expired")
	default:
		writeError(w, http.StatusUnauthorized, "bearer token is invalid")
	}
}
