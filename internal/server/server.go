// Package server exposes the Trestle HTTP JSON API.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartOpts holds configuration for the API server.
type StartOpts struct {
	DB       *gorm.DB
	Port     int
	Secret   string
	TokenTTL time.Duration
	Logger   *zap.Logger
	Out      io.Writer
}

// NewRouter builds the gin engine with all routes registered. Exposed so
// tests can drive the API without a listener.
func NewRouter(opts StartOpts) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.Logger != nil {
		router.Use(requestLogger(opts.Logger))
	}
	registerRoutes(router, opts)
	return router
}

// Start launches the API server. It blocks until ctx is cancelled, then
// shuts down gracefully.
func Start(ctx context.Context, opts StartOpts) error {
	if opts.DB == nil {
		return fmt.Errorf("server: db is required")
	}
	if opts.Secret == "" {
		return fmt.Errorf("server: secret is required")
	}
	if opts.Port <= 0 {
		opts.Port = 8080
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 30 * time.Minute
	}

	router := NewRouter(opts)

	addr := fmt.Sprintf(":%d", opts.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "Trestle API running at http://localhost:%d\n", opts.Port)
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
