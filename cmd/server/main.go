package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"loadguard/internal/jwttoken"
	"loadguard/internal/platform/config"
	"loadguard/internal/platform/httpserver"
	"loadguard/internal/platform/logger"
	"loadguard/internal/platform/middleware"
	"loadguard/internal/registry"
	"loadguard/internal/registry/tracer"
	httptransport "loadguard/internal/transport/http"
	"loadguard/internal/verification"
	verifmetrics "loadguard/internal/verification/metrics"
)

const tokenIssuer = "loadguard"

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing loadguard",
		"addr", cfg.Addr,
		"registry_configured", cfg.RegistryAPIKey != "",
		"auth_enabled", cfg.APISigningKey != "",
	)

	registryClient := registry.NewClient(
		cfg.RegistryBaseURL,
		cfg.RegistryAPIKey,
		cfg.RegistryTimeout,
		registry.WithTracer(tracer.NewOTel()),
		registry.WithLogger(log),
	)

	m := verifmetrics.New()
	verifier := verification.New(
		registryClient,
		verification.Config{
			CreditMinScore:         cfg.CreditMinScore,
			CreditMaxScore:         cfg.CreditMaxScore,
			FreshnessWarnMinutes:   cfg.FreshnessWarnMinutes,
			FreshnessRejectMinutes: cfg.FreshnessRejectMinutes,
		},
		verification.WithLogger(log),
		verification.WithMetrics(m),
	)

	var validator middleware.TokenValidator
	if cfg.APISigningKey != "" {
		tokens := jwttoken.NewService(cfg.APISigningKey, tokenIssuer, 24*time.Hour)
		validator = jwttoken.NewMiddlewareAdapter(tokens)
	} else {
		log.Warn("API_SIGNING_KEY not set, verify endpoints are unauthenticated")
	}

	handler := httptransport.NewHandler(verifier, log)
	router := httptransport.NewRouter(handler, validator, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
