package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/timecard-app/timecard/internal/domain"
	"github.com/timecard-app/timecard/internal/infrastructure/http/handlers"
	"github.com/timecard-app/timecard/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler   *handlers.AuthHandler
	TimeHandler   *handlers.TimeHandler
	ReportHandler *handlers.ReportHandler
	AdminHandler  *handlers.AdminHandler
	UsersHandler  *handlers.UsersHandler
	HealthHandler *handlers.HealthHandler
	Session       *middleware.SessionResolver
	Log           zerolog.Logger
	Secure        func(http.Handler) http.Handler
	IPRateLimit   func(http.Handler) http.Handler
	CORS          func(http.Handler) http.Handler
	Metrics       bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))
	r.Use(chimid.SetHeader("Content-Type", "application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}
	r.Use(cfg.Session.Handler)

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.AuthHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole())
			r.Post("/logout", cfg.AuthHandler.Logout)
			r.Post("/role", cfg.AuthHandler.SwitchRole)
		})
	})

	r.Route("/time", func(r chi.Router) {
		r.Use(middleware.RequireRole(domain.RoleAccount))
		r.Get("/", cfg.TimeHandler.Day)
		r.Get("/summary", cfg.TimeHandler.Summary)
		r.Post("/entries", cfg.TimeHandler.Create)
		r.Put("/entries/{id}", cfg.TimeHandler.Update)
		r.Delete("/entries/{id}", cfg.TimeHandler.Delete)
		r.Post("/sync", cfg.TimeHandler.Sync)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireRole(domain.RoleOfficeManager, domain.RoleAdmin))
		r.Get("/worker", cfg.ReportHandler.Worker)
		r.Get("/project", cfg.ReportHandler.Project)
	})

	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole())
			r.Get("/me", cfg.AuthHandler.Me)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.RoleOfficeManager, domain.RoleAdmin))
			r.Get("/", cfg.UsersHandler.List)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireRole(domain.RoleAdmin))
		r.Post("/projects", cfg.AdminHandler.CreateProject)
		r.Get("/projects", cfg.AdminHandler.ListProjects)
		r.Put("/projects/{id}", cfg.AdminHandler.UpdateProject)
		r.Delete("/projects/{id}", cfg.AdminHandler.SuppressProject)
		r.Post("/assignments", cfg.AdminHandler.CreateAssignment)
		r.Delete("/assignments/{id}", cfg.AdminHandler.SuppressAssignment)
		r.Put("/calendar/{date}", cfg.AdminHandler.SetCalendarDay)
		r.Get("/calendar", cfg.AdminHandler.Calendar)
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
