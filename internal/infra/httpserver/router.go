package httpserver

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/contract-review/internal/domain/contract"
	"github.com/bryanwahyu/contract-review/internal/middleware"
)

// ContractSubmitter runs the intake pipeline for one upload.
type ContractSubmitter interface {
	Submit(ctx context.Context, upload *contract.Upload) (string, error)
}

// Deps are the collaborators the router needs. Metrics and Health are optional.
type Deps struct {
	Contracts       ContractSubmitter
	Log             logrus.FieldLogger
	Metrics         *middleware.Metrics
	Health          map[string]middleware.HealthChecker
	MaxFileBytes    int64
	MaxRequestBytes int64
	AllowedOrigins  []string
}

type Router struct {
	contracts       ContractSubmitter
	log             logrus.FieldLogger
	metrics         *middleware.Metrics
	maxFileBytes    int64
	maxRequestBytes int64
}

func NewRouter(d Deps) http.Handler {
	log := d.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	maxFile := d.MaxFileBytes
	if maxFile <= 0 {
		maxFile = contract.MaxUploadBytes
	}
	maxRequest := d.MaxRequestBytes
	if maxRequest <= 0 {
		maxRequest = 4 * maxFile
	}
	r := &Router{
		contracts:       d.Contracts,
		log:             log,
		metrics:         d.Metrics,
		maxFileBytes:    maxFile,
		maxRequestBytes: maxRequest,
	}

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Logging(log))
	if d.Metrics != nil {
		mux.Use(d.Metrics.Handler)
	}
	mux.Use(middleware.Recoverer(log))
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	mux.Get("/healthz", middleware.LivenessHandler)
	mux.Get("/readyz", middleware.ReadinessHandler)
	mux.Get("/health", middleware.HealthHandler(d.Health))
	if d.Metrics != nil {
		mux.Handle("/metrics", d.Metrics.Exposition())
	}

	mux.Route("/api/contract", func(rt chi.Router) {
		rt.Post("/", r.wrap(r.handleSubmit))
		rt.Get("/", r.wrap(r.handleUnimplemented))
		rt.Delete("/", r.wrap(r.handleUnimplemented))
	})

	return mux
}
