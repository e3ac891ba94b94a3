package http_handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthanhphan/go-database-proxy/internal/gateway/config"
	"github.com/anthanhphan/go-database-proxy/internal/gateway/port"
	"github.com/anthanhphan/go-database-proxy/pkg/cluster"
	sdklogger "github.com/anthanhphan/gosdk/logger"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app     *fiber.App
	cfg     *config.Config
	service port.SessionService
}

func NewServer(cfg *config.Config, service port.SessionService) *Server {
	app := fiber.New(fiber.Config{})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	s := &Server{
		app:     app,
		cfg:     cfg,
		service: service,
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.app.Post("/sessions", s.handleEstablish)
	s.app.Post("/sessions/:key/statements", s.handleSessionStatement)
	s.app.Delete("/sessions/:key", s.handleTerminate)
	s.app.Post("/statements", s.handleStatement)
	s.app.Get("/cluster/health", s.handleClusterHealth)
}

func (s *Server) Start() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown()
}

func (s *Server) sendJSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

type establishRequest struct {
	User     string `json:"user"`
	Database string `json:"database"`
	ClientID string `json:"client_id"`
}

func (s *Server) handleEstablish(c *fiber.Ctx) error {
	var req establishRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return s.sendJSONError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	session, err := s.service.Establish(c.Context(), port.ConnectDetails{
		User:     req.User,
		Database: req.Database,
		ClientID: req.ClientID,
	})
	if err != nil {
		sdklogger.Errorw("Session establishment failed", "error", err.Error())
		if errors.Is(err, cluster.ErrNoHealthyNodes) {
			return s.sendJSONError(c, fiber.StatusServiceUnavailable, err.Error())
		}
		return s.sendJSONError(c, fiber.StatusBadGateway, fmt.Sprintf("Establish failed: %v", err))
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (s *Server) handleSessionStatement(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return s.sendJSONError(c, fiber.StatusBadRequest, "Missing session key")
	}
	return s.execute(c, key)
}

func (s *Server) handleStatement(c *fiber.Ctx) error {
	return s.execute(c, "")
}

func (s *Server) execute(c *fiber.Ctx, sessionKey string) error {
	payload := c.Body()
	if len(payload) == 0 {
		return s.sendJSONError(c, fiber.StatusBadRequest, "Missing statement payload")
	}

	result, err := s.service.Execute(c.Context(), sessionKey, payload)
	if err != nil {
		switch {
		case errors.Is(err, cluster.ErrSessionNotBound):
			return s.sendJSONError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, cluster.ErrBoundNodeUnavailable):
			return s.sendJSONError(c, fiber.StatusServiceUnavailable, err.Error())
		case errors.Is(err, cluster.ErrNoHealthyNodes):
			return s.sendJSONError(c, fiber.StatusServiceUnavailable, err.Error())
		}
		sdklogger.Warnw("Statement execution failed", "session_key", sessionKey, "error", err.Error())
		return s.sendJSONError(c, fiber.StatusBadGateway, fmt.Sprintf("Execution failed: %v", err))
	}

	c.Set("Content-Type", "application/octet-stream")
	return c.Send(result)
}

func (s *Server) handleTerminate(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return s.sendJSONError(c, fiber.StatusBadRequest, "Missing session key")
	}

	if err := s.service.Terminate(c.Context(), key); err != nil {
		if errors.Is(err, port.ErrSessionNotFound) {
			return s.sendJSONError(c, fiber.StatusNotFound, err.Error())
		}
		return s.sendJSONError(c, fiber.StatusBadGateway, fmt.Sprintf("Terminate failed: %v", err))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleClusterHealth(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/plain")
	return c.SendString(s.service.ClusterHealth())
}
