package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"locallibrary/internal/catalog"
	"locallibrary/internal/config"
	"locallibrary/internal/httpx"
	"locallibrary/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.WithError(err).WithField("dsn", config.RedactDSN(cfg.DatabaseDSN)).Fatal("cannot open database")
	}
	defer dbPool.Close()
	log.Info("database connection OK")

	repo := catalog.NewPostgresRepo(dbPool, cfg.QueryTimeout)
	handler := catalog.NewHTTPHandler(catalog.NewService(repo), log)

	limiter := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies...)
	go limiter.Run(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(dbPool, handler, limiter, cfg, log),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("graceful shutdown failed")
		}
	}()

	log.WithField("addr", cfg.Addr).Info("starting server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server error")
	}
	log.Info("server stopped")
}

// pinger is the part of the pool the readiness check needs.
type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(db pinger, handler *catalog.HTTPHandler, limiter *httpx.RateLimiter, cfg config.Config, log logrus.FieldLogger) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	handler.Register(router)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		limiter.Middleware,
	)
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
