package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/utils/apperr"
)

// Config holds HTTP server settings
type Config struct {
	Addr string
	// AllowedOrigin enables CORS for the given origin when not empty
	AllowedOrigin string
}

// NewConfig creates a new Config
func NewConfig(addr, allowedOrigin string) *Config {
	return &Config{
		Addr:          addr,
		AllowedOrigin: allowedOrigin,
	}
}

// UseCases bundles the use cases served over HTTP
type UseCases struct {
	dashboard    interfaces.Dashboard
	notification interfaces.Notification
}

// NewUseCases creates a new UseCases
func NewUseCases(dashboard interfaces.Dashboard, notification interfaces.Notification) *UseCases {
	return &UseCases{
		dashboard:    dashboard,
		notification: notification,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg *Config, uc *UseCases) (*Server, error) {
	if cfg == nil {
		return nil, goerr.New("server config is required")
	}
	if uc == nil || uc.dashboard == nil || uc.notification == nil {
		return nil, goerr.New("dashboard and notification use cases are required")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if cfg.AllowedOrigin != "" {
		router.Use(CORS(cfg.AllowedOrigin))
	}

	projects := &projectHandler{dashboard: uc.dashboard}
	notifications := &notificationHandler{notification: uc.notification, now: time.Now}

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projects.list)
			r.Get("/{name}", projects.get)
			r.Get("/{name}/defects", projects.defects)
			r.Get("/{name}/metrics", projects.metrics)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notifications.recent)
			r.Post("/", notifications.publish)
			r.Get("/unread_count", notifications.unreadCount)
			r.Post("/read_all", notifications.markAllAsRead)
			r.Post("/{id}/read", notifications.markAsRead)
		})
	})

	return &Server{
		Server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "defectdash",
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to status codes. Internal errors are logged
// and their details are not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrProjectNotFound), errors.Is(err, model.ErrNotificationNotFound):
		status = http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagInvalidInput):
		status = http.StatusBadRequest
	}

	message := http.StatusText(status)
	if status != http.StatusInternalServerError {
		message = err.Error()
	} else {
		apperr.Handle(r.Context(), "request failed", err)
	}

	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}
