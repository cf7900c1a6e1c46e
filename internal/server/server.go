// Package server exposes the numberify conversion as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/numberify?text=<sentence>[&lang=en]
//	POST /api/numberify   body: {"text":"...","lang":"es","trace":true}
//	GET  /api/languages
//	GET  /healthz
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"

	numberify "github.com/xavirn89/numberify-text"
	"github.com/xavirn89/numberify-text/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Server wires the HTTP handlers to a gin engine.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	engine *gin.Engine
}

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidators adds the "language" binding tag to gin's validator.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = registerLanguageTag(v)
	})
	return registerErr
}

// registerLanguageTag makes the "language" tag accept any tag with a
// conversion pipeline.
func registerLanguageTag(v *validator.Validate) error {
	err := v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return numberify.Supported(fl.Field().String())
	})
	if err != nil {
		return fmt.Errorf("failed to register language validator: %w", err)
	}
	return nil
}

// New builds a Server from cfg. Unknown gin modes fall back to release.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	if err := registerValidators(); err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(gin.Recovery(), requestLogger(log))

	s := &Server{cfg: cfg, log: log, engine: engine}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/numberify", s.handleNumberify)
	api.POST("/numberify", s.handleNumberify)
	api.GET("/languages", s.handleLanguages)

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, "method not allowed")
	})
	s.engine.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "not found")
	})
}

// Handler returns the engine wrapped in the configured CORS policy.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.engine)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.GetAddr(),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "address", srv.Addr, "mode", gin.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.log.Info("server exited gracefully")
	return nil
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if msg := c.Errors.String(); msg != "" {
			args = append(args, "error", msg)
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("HTTP request completed", args...)
		case status >= 400:
			log.Warn("HTTP request completed", args...)
		default:
			log.Debug("HTTP request completed", args...)
		}
	}
}
