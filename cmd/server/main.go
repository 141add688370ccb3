package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/podworks/profiled/internal/http/health"
	"github.com/podworks/profiled/internal/http/v1/routes"
	"github.com/podworks/profiled/internal/platform/auth"
	appfirebase "github.com/podworks/profiled/internal/platform/firebase"
	applog "github.com/podworks/profiled/internal/platform/logging"
	appmiddleware "github.com/podworks/profiled/internal/platform/middleware"
	"github.com/podworks/profiled/internal/service/account"
	"github.com/podworks/profiled/internal/service/pod"
	"github.com/podworks/profiled/internal/service/webprofile"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	// Local development convenience; production reads real env vars.
	_ = godotenv.Load()

	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx := context.Background()

	clients, err := appfirebase.NewClients(ctx, os.Getenv("GOOGLE_CLOUD_PROJECT"))
	if err != nil {
		applog.LogError(ctx, "firebase init failed", err)
		os.Exit(1)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(context.Background(), "firestore close error", err)
		}
	}()

	verifier := auth.NewFirebaseVerifier(clients.Auth)
	accountStore := account.NewFirestoreStore(clients.Firestore)
	documentStore := pod.NewFirestoreStore(clients.Firestore)
	profileService := webprofile.New(documentStore, accountStore, accountStore, applog.Logger())

	router := chi.NewRouter()

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		chimiddleware.RealIP,
		// Profile bodies carry base64 photos; cap them before decoding.
		chimiddleware.RequestSize(8<<20), // 8 MB limit
		applog.RequestLogger(),
		chimiddleware.Recoverer,
	)

	router.Get("/health", health.Handler)

	cfg := huma.DefaultConfig("Profiled API", Version)
	cfg.DocsPath = "/api-docs"
	api := humachi.New(router, cfg)

	routes.Register(api, verifier, profileService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
