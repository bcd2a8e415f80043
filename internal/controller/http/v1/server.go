package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/pdf_converter/internal/config"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies groups what the router needs. Conversions may be nil, in
// which case the history endpoints are not mounted.
type Dependencies struct {
	Validator   Validator
	Store       TempStore
	Converter   Converter
	Recorder    ConversionRecorder
	Conversions ConversionsRepository
}

func NewServer(log *slog.Logger, cfg config.HTTP, maxRequestBytes int64, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, cfg, maxRequestBytes, deps),
		},
	}
}

func NewRouter(log *slog.Logger, cfg config.HTTP, maxRequestBytes int64, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(cfg.CORSOrigins))

	convert := NewConvertHandler(log, maxRequestBytes, cfg.WriteTimeout, deps.Validator, deps.Store, deps.Converter, deps.Recorder)
	r.Post("/convert-to-html", convert.ConvertToHTML)
	r.Get("/health", health)

	if deps.Conversions != nil {
		h := NewConversionsHandler(log, deps.Conversions)
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/conversions", h.GetConversions)
		})
	}

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
