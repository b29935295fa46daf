package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/CristiGvl/diskspace/internal/config"
	"github.com/CristiGvl/diskspace/internal/disk"
	"github.com/CristiGvl/diskspace/internal/diskspace"
	"github.com/CristiGvl/diskspace/internal/log"
	"github.com/CristiGvl/diskspace/internal/platform"
)

// ChannelName is the method channel the disk space calls are served on.
const ChannelName = "disk_space"

// Server represents the API server
type Server struct {
	app          *fiber.App
	query        *diskspace.Query
	diskReader   disk.Reader
	queryTimeout time.Duration
}

// NewServer creates a new API server answering for q
func NewServer(cfg *config.Config, q *diskspace.Query, diskReader disk.Reader) (*Server, error) {
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		ServerHeader:          "diskspace",
		AppName:               "diskspace v1.0",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:          app,
		query:        q,
		diskReader:   diskReader,
		queryTimeout: cfg.Query.Timeout,
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Method channel, mirrors the plugin contract
	api.Post("/channel/"+ChannelName, s.callMethod)

	// Capacity endpoints
	api.Get("/disk", s.getCapacity)
	api.Get("/disk/total", s.getTotal)
	api.Get("/disk/free", s.getFree)
	api.Get("/disk/volume", s.getVolume)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	log.Info().Str("address", address).Str("data_dir", s.query.Path()).Msg("Starting diskspace server")
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// requestLogger logs every request through zerolog
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if err != nil && errors.As(err, &fe) {
			status = fe.Code
		}

		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("remote_addr", c.IP()).
			Msg("http request")

		return err
	}
}
