package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/cristianortiz/auctionMarket/internal/shared/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Server struct {
	app             *fiber.App
	shutdownTimeout time.Duration
}

var log = logger.GetLogger() // Instancia logger para el pakg

// NewServer builds the fiber app with request logging and the health check.
// errorHandler maps errors returned by handlers, nil keeps fiber's default.
func NewServer(shutdownTimeout time.Duration, errorHandler fiber.ErrorHandler) *Server {
	cfg := fiber.Config{DisableStartupMessage: true}
	if errorHandler != nil {
		cfg.ErrorHandler = errorHandler
	}
	app := fiber.New(cfg)

	// Middleware de logging
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("HTTP request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("remote_addr", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	})

	// Endpoint de health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	return &Server{app: app, shutdownTimeout: shutdownTimeout}
}

// App exposes the fiber app so bounded contexts can register their routes.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server started", zap.String("addr", addr))
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return <-errCh
}
