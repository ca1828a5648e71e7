package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"brothertrans/backend/internal/httpapi"
)

const shutdownTimeout = 30 * time.Second

func main() {
	runtimeConfig, err := httpapi.LoadRuntimeConfigFromEnv()
	if err != nil {
		zap.NewExample().Sugar().Fatalf("failed to load runtime config: %v", err)
	}

	logger, err := newLogger(runtimeConfig.Mode)
	if err != nil {
		zap.NewExample().Sugar().Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	logf := logger.Sugar().Infof

	if runtimeConfig.Mode.IsDevelopment() {
		logf("WARNING: backend is running in development mode with permissive CORS defaults")
	}

	router, err := httpapi.NewRouter(runtimeConfig, logger)
	if err != nil {
		logger.Sugar().Fatalf("failed to initialize router: %v", err)
	}

	addr := getenv("BROTHERTRANS_ADDR", httpapi.DefaultListenAddr(runtimeConfig.Mode))
	if err := run(addr, router, logf); err != nil {
		logger.Sugar().Fatalf("server failed: %v", err)
	}
}

func newLogger(mode httpapi.RuntimeMode) (*zap.Logger, error) {
	if mode.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func getenv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	return value
}

func run(addr string, handler http.Handler, logf func(string, ...any)) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer func() {
		_ = listener.Close()
	}()

	logf("brother trans engine listening on %s", addr)

	serveErr := make(chan error, 1)
	go func() {
		if startErr := server.Serve(listener); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serveErr <- startErr
			return
		}
		serveErr <- nil
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err = <-serveErr:
		return err
	case shutdownSignal := <-quit:
		logf("shutdown signal received (%s), draining in-flight requests", shutdownSignal)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Shutdown(ctx); err != nil {
		logf("server forced to shutdown: %v", err)
	} else {
		logf("server exited gracefully")
	}

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
		logf("timed out waiting for server goroutine to exit: %v", ctx.Err())
		return nil
	}
}
