package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gxcuit/vibe-translate/internal/adapters/llm/registry"
	"github.com/gxcuit/vibe-translate/internal/domain"
	"github.com/gxcuit/vibe-translate/internal/ports"
	"github.com/gxcuit/vibe-translate/internal/usecase/exporter"
	"github.com/gxcuit/vibe-translate/internal/usecase/translator"
)

type TranslateService interface {
	Translate(ctx context.Context, a translator.Args) (translator.Result, error)
}

type ExportService interface {
	Export(ctx context.Context, format string, limit int) (exporter.Result, error)
}

type Deps struct {
	Translator TranslateService
	Exporter   ExportService
	Providers  ports.ProviderRepository
	Settings   ports.SettingsRepository
	History    ports.HistoryRepository
	Registry   *registry.Registry
	// BuildProvider turns a stored record into a live client for model
	// listing and connectivity tests.
	BuildProvider func(*domain.Provider) (ports.Provider, error)
}

type Server struct {
	router *chi.Mux
	port   int
	d      Deps
}

func NewServer(port int, d Deps) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{router: router, port: port, d: d}

	router.Get("/health", s.health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/translate", s.translate)

		r.Route("/providers", func(r chi.Router) {
			r.Get("/", s.listProviders)
			r.Post("/", s.createProvider)
			r.Get("/health", s.providersHealth)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getProvider)
				r.Put("/", s.updateProvider)
				r.Delete("/", s.deleteProvider)
				r.Get("/models", s.listProviderModels)
				r.Post("/test", s.testProvider)
			})
		})

		r.Get("/settings", s.listSettings)
		r.Put("/settings", s.putSettings)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", s.listHistory)
			r.Delete("/", s.clearHistory)
			r.Get("/export", s.exportHistory)
		})
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("api server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
