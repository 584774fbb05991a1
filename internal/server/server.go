// Package server runs the HTTP API around the strategy catalog.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/idkit/internal/config"
	"github.com/weiawesome/idkit/internal/generator"
	"github.com/weiawesome/idkit/internal/handler"
	pkglog "github.com/weiawesome/idkit/pkg/log"
)

const shutdownTimeout = 5 * time.Second

// Run serves the registry over HTTP until ctx is cancelled, then shuts
// down gracefully. It returns when the server has stopped.
func Run(ctx context.Context, cfg *config.Config, registry generator.Registry) error {
	logger := pkglog.L()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	handler.NewHandler(registry).RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Int("kinds", len(registry)).Msg("idkit listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down idkit")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info().Msg("idkit stopped")
	return nil
}
