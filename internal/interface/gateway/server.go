package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/usecase"
	"flightboard-service/pkg/logger"
	"flightboard-service/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server hosts the tool-call gateway: both adapters behind POST
// /call_tool, plus registry introspection, health and metrics.
type Server struct {
	echo       *echo.Echo
	dispatcher *usecase.Dispatcher
	metrics    *metrics.Metrics
	logger     logger.Logger
	addr       string
}

// NewServer creates a new gateway server
func NewServer(dispatcher *usecase.Dispatcher, m *metrics.Metrics, log logger.Logger, addr string, readTimeout, writeTimeout time.Duration) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = readTimeout
	e.Server.WriteTimeout = writeTimeout

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server := &Server{
		echo:       e,
		dispatcher: dispatcher,
		metrics:    m,
		logger:     log,
		addr:       addr,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all gateway endpoints
func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/list_tools", s.handleListTools)
	s.echo.POST("/call_tool", s.handleCallTool)
}

func (s *Server) handleListTools(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]entity.ToolSpec{
		"tools": entity.Registry(),
	})
}

func (s *Server) handleCallTool(c echo.Context) error {
	var env entity.ToolCallEnvelope
	if err := c.Bind(&env); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	start := time.Now()
	result, err := s.dispatcher.Dispatch(c.Request().Context(), env)
	s.metrics.ToolCalls.WithLabelValues(string(env.ServerName), string(env.ToolName)).Inc()
	s.metrics.CallDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		code, status := classify(err)
		s.metrics.ToolErrors.WithLabelValues(string(code)).Inc()
		// Internal error text is logged, never sent to end users by
		// the presentation layer; the gateway still returns it to the
		// calling service for wrapping.
		s.logger.Error("Tool call failed",
			"server", env.ServerName, "tool", env.ToolName, "code", code, "error", err)
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}

// classify maps the protocol error taxonomy onto HTTP statuses.
func classify(err error) (entity.ToolErrorCode, int) {
	var toolErr *entity.ToolError
	if errors.As(err, &toolErr) {
		switch toolErr.Code {
		case entity.ErrInvalidParams:
			return entity.ErrInvalidParams, http.StatusBadRequest
		case entity.ErrMethodNotFound:
			return entity.ErrMethodNotFound, http.StatusNotFound
		}
		return entity.ErrInternal, http.StatusInternalServerError
	}
	return entity.ErrInternal, http.StatusInternalServerError
}

// Start begins serving. Blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("Starting tool gateway", "addr", s.addr)
	if err := s.echo.Start(s.addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
