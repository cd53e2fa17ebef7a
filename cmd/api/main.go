package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/contract-review/internal/application"
	"github.com/bryanwahyu/contract-review/internal/application/contracts"
	"github.com/bryanwahyu/contract-review/internal/config"
	"github.com/bryanwahyu/contract-review/internal/infra/ai/openai"
	"github.com/bryanwahyu/contract-review/internal/infra/ai/prompt"
	"github.com/bryanwahyu/contract-review/internal/infra/ai/schema"
	"github.com/bryanwahyu/contract-review/internal/infra/httpserver"
	"github.com/bryanwahyu/contract-review/internal/infra/logging"
	"github.com/bryanwahyu/contract-review/internal/infra/tracing"
	"github.com/bryanwahyu/contract-review/internal/middleware"
)

const serviceName = "contract-review"

func main() {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn(".env could not be loaded")
	}

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		logrus.WithError(err).Fatal("config load error")
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, serviceName)
	if err != nil {
		log.WithError(err).Warn("tracing disabled")
		shutdownTracing = func(context.Context) error { return nil }
	}

	// one client for the process lifetime
	analyzer := openai.NewClient(openai.Options{
		APIKey:     cfg.OpenAI.APIKey,
		Model:      cfg.OpenAI.Model,
		BaseURL:    cfg.OpenAI.BaseURL,
		HTTPClient: tracing.HTTPClient(),
	})

	svc := &contracts.Service{
		Analyzer:       analyzer,
		MaxUploadBytes: cfg.Upload.MaxFileBytes,
		Log:            log,
		Clock:          application.SystemClock{},
	}
	if cfg.Analysis.SchemaCheck {
		checker, err := schema.NewChecker(prompt.ResultSchema())
		if err != nil {
			log.WithError(err).Fatal("result schema compile error")
		}
		svc.Checker = checker
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		log.WithError(err).Fatal("metrics init error")
	}

	router := httpserver.NewRouter(httpserver.Deps{
		Contracts: svc,
		Log:       log,
		Metrics:   metrics,
		Health: map[string]middleware.HealthChecker{
			"openai": middleware.CheckFunc(analyzer.Ping),
		},
		MaxFileBytes:    cfg.Upload.MaxFileBytes,
		MaxRequestBytes: cfg.Upload.MaxRequestBytes,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      tracing.Handler(router, serviceName),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":           srv.Addr,
			"model":          analyzer.Model,
			"prompt_version": prompt.Version,
		}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.WithError(err).Error("shutdown error")
	}
	if err := shutdownTracing(ctx2); err != nil {
		log.WithError(err).Error("tracing shutdown error")
	}
}
