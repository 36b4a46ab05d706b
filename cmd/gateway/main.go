package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/auy-connect/student-portal/internal/api/http"
	"github.com/auy-connect/student-portal/internal/audit"
	auth "github.com/auy-connect/student-portal/internal/auth/middleware"
	"github.com/auy-connect/student-portal/internal/config"
	"github.com/auy-connect/student-portal/internal/db"
	"github.com/auy-connect/student-portal/internal/portal"
	"github.com/auy-connect/student-portal/internal/session"
	"github.com/auy-connect/student-portal/internal/sheets"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.FromEnv()

	// --- DB (sessions + event log) ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	events := audit.NewEventRepo(dbh)

	// --- Session store ---
	var store session.Store
	switch cfg.SessionBackend {
	case "redis":
		store = session.NewRedisStore(cfg.RedisAddr, cfg.SessionTTL)
	case "memory":
		store = session.NewMemoryStore(cfg.SessionTTL)
	default:
		store = session.NewSQLStore(dbh, cfg.SessionTTL)
	}

	// --- Record fetcher + derivation service ---
	if cfg.SheetsAPIURL == "" {
		log.Printf("SHEETS_API_URL not set, serving demo data")
	}
	client := sheets.NewClient(cfg.SheetsAPIURL)
	svc := portal.NewService(client, cfg.DemoDelay, events)

	authSvc := auth.NewAuthService(cfg.AuthSecret, cfg.SessionTTL)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", api.LoginHandler(client, store, authSvc, svc, events))

	// Protected views (JWT + live session slot)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc, store))

		pr.Post("/auth/logout", api.LogoutHandler(store, svc, events))

		pr.Get("/me", api.MeHandler(svc))
		pr.Get("/dashboard", api.DashboardHandler(svc))
		pr.Get("/courses", api.CoursesHandler(svc))
		pr.Get("/grades", api.GradesHandler(svc))
		pr.Get("/attendance", api.AttendanceHandler(svc))
		pr.Get("/credits", api.CreditsHandler(svc))
		pr.Get("/materials", api.MaterialsHandler(svc))
		pr.Get("/quizzes", api.QuizzesHandler(svc))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (sessions=%s, db=%s)", cfg.HTTPAddr, cfg.SessionBackend, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
