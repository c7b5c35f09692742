package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hris-console/internal/audit"

	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// ShutdownFunc releases one resource after the server stopped accepting
// requests.
type ShutdownFunc func(ctx context.Context) error

// StartHTTPServer runs handler until SIGINT/SIGTERM and then shuts down
// gracefully, running hooks in order.
func StartHTTPServer(
	handler http.Handler,
	cfg ServerConfig,
	auditLogger audit.Logger,
	hooks ...ShutdownFunc,
) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	serve(handler, cfg, auditLogger, quit, hooks...)
}

func serve(
	handler http.Handler,
	cfg ServerConfig,
	auditLogger audit.Logger,
	quit <-chan os.Signal,
	hooks ...ShutdownFunc,
) {
	log := zap.L().Named("bootstrap.server")
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	sig := <-quit
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	auditLogger.Log(context.Background(), audit.Entry{
		Action:  audit.ActionServerShutdown,
		Message: "Server is shutting down",
		Meta: map[string]any{
			"signal": sig.String(),
		},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}

	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			log.Warn("shutdown hook failed", zap.Error(err))
		}
	}
}
