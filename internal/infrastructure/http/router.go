package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/http/handlers"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/http/middleware"
)

// APIVersion is stamped on every response.
const APIVersion = "1"

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	HealthHandler   *handlers.HealthHandler
	UsersHandler    *handlers.UsersHandler
	ClientsHandler  *handlers.ClientsHandler
	ProjectsHandler *handlers.ProjectsHandler
	TeamsHandler    *handlers.TeamsHandler
	TasksHandler    *handlers.TasksHandler
	TimeLogsHandler *handlers.TimeLogsHandler
	AdminHandler    *handlers.AdminHandler
	RequireSession  func(http.Handler) http.Handler // X-Session-ID guard for resource routes
	RequireAdmin    func(http.Handler) http.Handler // X-Timesheet-Admin-Secret for /admin/*
	CORS            func(http.Handler) http.Handler
	Secure          func(http.Handler) http.Handler
	Log             zerolog.Logger
	Metrics         bool // expose /metrics
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
	r.Use(middleware.APIVersion(APIVersion))
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))
	r.Use(chimid.SetHeader("Content-Type", "application/json"))

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

	// Session lifecycle: these read the token themselves.
	r.Post("/login", cfg.AuthHandler.Login)
	r.Get("/session/check", cfg.AuthHandler.CheckSession)
	r.Delete("/session", cfg.AuthHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(cfg.RequireSession)

		r.Get("/users", cfg.UsersHandler.List)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", cfg.ClientsHandler.List)
			r.Post("/", cfg.ClientsHandler.Create)
			r.Put("/{id}", cfg.ClientsHandler.Update)
			r.Delete("/{id}", cfg.ClientsHandler.Delete)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", cfg.ProjectsHandler.List)
			r.Post("/", cfg.ProjectsHandler.Create)
			r.Get("/{id}", cfg.ProjectsHandler.Get)
			r.Put("/{id}", cfg.ProjectsHandler.Update)
			r.Delete("/{id}", cfg.ProjectsHandler.Delete)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", cfg.TeamsHandler.List)
			r.Post("/", cfg.TeamsHandler.Create)
			r.Put("/{id}", cfg.TeamsHandler.Update)
			r.Delete("/{id}", cfg.TeamsHandler.Delete)
			r.Put("/{id}/members", cfg.TeamsHandler.SetMembers)
		})
		r.Post("/team-members", cfg.TeamsHandler.AddMember)
		r.Delete("/team-members", cfg.TeamsHandler.RemoveMember)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", cfg.TasksHandler.List)
			r.Post("/", cfg.TasksHandler.Create)
			r.Put("/{id}", cfg.TasksHandler.Update)
			r.Delete("/{id}", cfg.TasksHandler.Delete)
		})

		r.Route("/time-logs", func(r chi.Router) {
			r.Get("/", cfg.TimeLogsHandler.List)
			r.Post("/", cfg.TimeLogsHandler.Create)
			r.Put("/{id}", cfg.TimeLogsHandler.Update)
			r.Delete("/{id}", cfg.TimeLogsHandler.Delete)
		})
	})

	if cfg.AdminHandler != nil && cfg.RequireAdmin != nil {
		r.Route("/admin", func(r chi.Router) {
			r.Use(cfg.RequireAdmin)
			r.Post("/sessions/purge", cfg.AdminHandler.PurgeSessions)
		})
	}

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimid.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info().
				Str("request_id", chimid.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
