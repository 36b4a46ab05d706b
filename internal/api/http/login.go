package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/auy-connect/student-portal/internal/audit"
	authmw "github.com/auy-connect/student-portal/internal/auth/middleware"
	"github.com/auy-connect/student-portal/internal/metrics"
	"github.com/auy-connect/student-portal/internal/portal"
	"github.com/auy-connect/student-portal/internal/session"
	"github.com/auy-connect/student-portal/internal/sheets"
)

// Directory is the login-time user lookup.
type Directory interface {
	FetchUsers(ctx context.Context) ([]sheets.User, error)
}

// LoginHandler authenticates by email lookup against the directory sheet.
// POST /auth/login {"email": "..."}
func LoginHandler(dir Directory, store session.Store, authSvc *authmw.AuthService, svc *portal.Service, events *audit.EventRepo) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, nethttp.StatusBadRequest, "bad json")
			return
		}
		email := strings.TrimSpace(req.Email)
		if email == "" {
			writeError(w, nethttp.StatusBadRequest, "please enter your email")
			return
		}

		id, status, msg := lookup(r.Context(), dir, email)
		if status != 0 {
			outcome := "upstream_error"
			if status == nethttp.StatusNotFound {
				outcome = "not_found"
			}
			metrics.Logins.WithLabelValues(outcome).Inc()
			writeError(w, status, msg)
			return
		}

		sid := uuid.NewString()
		if err := store.Save(r.Context(), sid, id); err != nil {
			writeError(w, nethttp.StatusInternalServerError, "could not persist session")
			return
		}
		token, err := authSvc.IssueJWT(id.Email, sid)
		if err != nil {
			writeError(w, nethttp.StatusInternalServerError, "could not issue token")
			return
		}

		// a new login always starts from a fresh record fetch
		svc.Invalidate(id.Email)

		metrics.Logins.WithLabelValues("ok").Inc()
		if events != nil {
			_ = events.Append(r.Context(), audit.Event{Type: audit.TypeLogin, Key: id.Email})
		}
		writeJSON(w, nethttp.StatusOK, map[string]any{
			"access_token": token,
			"student":      id,
		})
	}
}

// lookup resolves an email to an identity. Matching is exact and
// case-sensitive against the directory list. With no endpoint configured
// the portal runs in demo mode and any email is accepted.
func lookup(ctx context.Context, dir Directory, email string) (session.Identity, int, string) {
	users, err := dir.FetchUsers(ctx)
	switch {
	case errors.Is(err, sheets.ErrNotConfigured):
		demo := sheets.DemoRecord()
		return session.Identity{Email: email, Name: demo.StudentName, Program: demo.StudyMode}, 0, ""
	case err != nil:
		return session.Identity{}, nethttp.StatusBadGateway, "error connecting to server, please try again later"
	}
	for _, u := range users {
		if u.Email == email {
			return session.Identity{Email: u.Email, Name: u.Name, Program: u.Program}, 0, ""
		}
	}
	return session.Identity{}, nethttp.StatusNotFound, "email not found, please check and try again"
}

// LogoutHandler clears the session slot and drops the record snapshot.
// POST /auth/logout (protected)
func LogoutHandler(store session.Store, svc *portal.Service, events *audit.EventRepo) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		id, ok := authmw.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, nethttp.StatusUnauthorized, "no session")
			return
		}
		sid := authmw.SessionTokenFromContext(r.Context())
		if err := store.Delete(r.Context(), sid); err != nil {
			writeError(w, nethttp.StatusInternalServerError, "could not clear session")
			return
		}
		svc.Invalidate(id.Email)
		if events != nil {
			_ = events.Append(r.Context(), audit.Event{Type: audit.TypeLogout, Key: id.Email})
		}
		w.WriteHeader(nethttp.StatusNoContent)
	}
}
