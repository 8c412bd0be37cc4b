// Package server exposes the crate optimizer over a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/piwi3910/CrateCraft/internal/engine"
	"github.com/piwi3910/CrateCraft/internal/export"
	"github.com/piwi3910/CrateCraft/internal/model"
)

// CrateRequest is the body of POST /api/crates.
type CrateRequest struct {
	Label  string   `json:"label"`
	Width  *float64 `json:"width" binding:"required"`
	Height *float64 `json:"height" binding:"required"`
	Depth  *float64 `json:"depth" binding:"required"`
}

// CrateResponse is the reply of POST /api/crates.
type CrateResponse struct {
	Label     string                 `json:"label,omitempty"`
	Cargo     model.Dims             `json:"cargo"`
	Designs   int                    `json:"designs"`
	Shortlist []model.ShortlistEntry `json:"shortlist"`
	Warnings  []string               `json:"warnings,omitempty"`
}

// New builds the router. The optimizer is shared read-only across requests
// and reports its diagnostics to logger.
func New(opt *engine.Optimizer, logger zerolog.Logger) *gin.Engine {
	opt = opt.WithLogger(logger)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	api := router.Group("/api")
	api.GET("/health", handleHealth())
	api.GET("/catalog", handleCatalog(opt.Catalog))
	api.POST("/crates", handleCrates(opt, logger))
	api.GET("/crates/chart", handleChart(opt))
	return router
}

// shutdownTimeout bounds how long in-flight requests may finish after the
// context is cancelled.
var shutdownTimeout = 5 * time.Second

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully. A failed shutdown is logged and returned.
func Run(ctx context.Context, addr string, handler http.Handler, logger zerolog.Logger, out io.Writer) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if out != nil {
		fmt.Fprintf(out, "CrateCraft API listening on %s\n", ln.Addr())
	}
	return serve(ctx, ln, handler, logger)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, logger zerolog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Str("addr", ln.Addr().String()).Msg("server shutdown failed")
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info().Str("addr", ln.Addr().String()).Msg("server stopped")
	return nil
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}

func handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func handleCatalog(catalog model.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog)
	}
}

func handleCrates(opt *engine.Optimizer, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CrateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cargo := model.Dims{Width: *req.Width, Height: *req.Height, Depth: *req.Depth}
		result := opt.Optimize(cargo)
		if result.Shortlist.Len() == 0 {
			logger.Warn().
				Float64("width", cargo.Width).
				Float64("height", cargo.Height).
				Float64("depth", cargo.Depth).
				Msg("empty shortlist")
		}

		c.JSON(http.StatusOK, CrateResponse{
			Label:     req.Label,
			Cargo:     cargo,
			Designs:   len(result.Designs),
			Shortlist: result.Shortlist.Entries,
			Warnings:  result.Warnings,
		})
	}
}

// handleChart renders the metrics chart for the cargo given as query
// parameters width, height and depth.
func handleChart(opt *engine.Optimizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dims [3]float64
		for i, key := range []string{"width", "height", "depth"} {
			v, err := strconv.ParseFloat(c.Query(key), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("query parameter %q must be a number", key)})
				return
			}
			dims[i] = v
		}

		result := opt.Optimize(model.Dims{Width: dims[0], Height: dims[1], Depth: dims[2]})
		if len(result.Designs) == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no designs for this cargo", "warnings": result.Warnings})
			return
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := export.ExportChart(c.Writer, result); err != nil {
			c.Error(err)
		}
	}
}
