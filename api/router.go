// Package api exposes the widget over HTTP: the embedded web UI, a JSON
// state API, and the preview/export/share endpoints.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"

	"github.com/Justina18/qr-code-app/config"
	"github.com/Justina18/qr-code-app/widget"
)

// Server holds the dependencies for all HTTP handlers.
type Server struct {
	Widget  *widget.Widget
	Cfg     *config.Config
	Log     *slog.Logger
	Version string

	startTime time.Time
	previews  *cache.Cache
}

// NewServer wires a Server around a widget instance. Rendered previews are
// cached per state revision for the configured TTL.
func NewServer(w *widget.Widget, cfg *config.Config, log *slog.Logger, version string) *Server {
	ttl := cfg.PreviewCacheTTL.Duration
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Server{
		Widget:    w,
		Cfg:       cfg,
		Log:       log,
		Version:   version,
		startTime: time.Now(),
		previews:  cache.New(ttl, 2*ttl),
	}
}

// NewRouter returns a fully configured chi router with all routes.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(corsMiddleware)
	r.Use(requestLogger(s.Log))

	// Widget web UI
	r.Get("/", s.handleWidgetPage)
	r.Get("/status", s.handleStatus)

	// Form state
	r.Get("/api/state", s.handleGetState)
	r.Post("/api/state", s.handleUpdateState)
	r.Post("/api/reset", s.handleReset)

	// Logo overlay
	r.Post("/api/logo", s.handleUploadLogo)
	r.Delete("/api/logo", s.handleRemoveLogo)

	// Rendering
	r.Get("/preview.png", s.handlePreview)
	r.Get("/export", s.handleExport)
	r.Get("/share", s.handleShare)

	return r
}

// --- helpers ----------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// --- middleware --------------------------------------------------------------

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
			next.ServeHTTP(w, r)
		})
	}
}
