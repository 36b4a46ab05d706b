package http

import (
	nethttp "net/http"

	authmw "github.com/auy-connect/student-portal/internal/auth/middleware"
	"github.com/auy-connect/student-portal/internal/portal"
)

// Handlers only — routes remain in main.go. Every view is a read-only
// projection of the derived bundle; nothing here mutates the record.

func MeHandler(svc *portal.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		b, ok := loadBundle(svc, w, r)
		if !ok {
			return
		}
		writeJSON(w, nethttp.StatusOK, b.Student)
	}
}

func DashboardHandler(svc *portal.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		b, ok := loadBundle(svc, w, r)
		if !ok {
			return
		}
		writeJSON(w, nethttp.StatusOK, b.DashboardView())
	}
}

func CoursesHandler(svc *portal.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		b, ok := loadBundle(svc, w, r)
		if !ok {
			return
		}
		writeJSON(w, nethttp.StatusOK, b.CoursesView())
	}
}

func GradesHandler(svc *portal.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		b, ok := loadBundle(svc, w, r)
		if !ok {
			return
		}
		semester := r.URL.Query().Get("semester")
		writeJSON(w, nethttp.StatusOK, b.GradesView(semester))
	}
}

func AttendanceHandler(svc *portal.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		b, ok := loadBundle(svc, w, r)
		if !ok {
			return
		}
		writeJSON(w, nethttp.StatusOK, b.AttendanceView())
	}
}

func CreditsHandler(svc *portal.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		b, ok := loadBundle(svc, w, r)
		if !ok {
			return
		}
		writeJSON(w, nethttp.StatusOK, b.CreditsView())
	}
}

func MaterialsHandler(svc *portal.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		b, ok := loadBundle(svc, w, r)
		if !ok {
			return
		}
		rows := b.Materials
		if courseID := r.URL.Query().Get("course_id"); courseID != "" {
			filtered := make([]portal.Material, 0, len(rows))
			for _, m := range rows {
				if m.CourseID == courseID {
					filtered = append(filtered, m)
				}
			}
			rows = filtered
		}
		writeJSON(w, nethttp.StatusOK, rows)
	}
}

func QuizzesHandler(svc *portal.Service) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		b, ok := loadBundle(svc, w, r)
		if !ok {
			return
		}
		rows := b.Quizzes
		if courseID := r.URL.Query().Get("course_id"); courseID != "" {
			filtered := make([]portal.Quiz, 0, len(rows))
			for _, q := range rows {
				if q.CourseID == courseID {
					filtered = append(filtered, q)
				}
			}
			rows = filtered
		}
		writeJSON(w, nethttp.StatusOK, rows)
	}
}

func loadBundle(svc *portal.Service, w nethttp.ResponseWriter, r *nethttp.Request) (portal.Bundle, bool) {
	id, ok := authmw.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, nethttp.StatusUnauthorized, "no session")
		return portal.Bundle{}, false
	}
	b, err := svc.Load(r.Context(), id.Email)
	if err != nil {
		writeFetchError(w, err)
		return portal.Bundle{}, false
	}
	return b, true
}
