package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handlers "github.com/wekeepgrowing/mollie-gateway/internal/adapter/handler/http"
	"github.com/wekeepgrowing/mollie-gateway/internal/config"
	"github.com/wekeepgrowing/mollie-gateway/internal/middleware/auth"
	"github.com/wekeepgrowing/mollie-gateway/pkg/errors"
	"github.com/wekeepgrowing/mollie-gateway/pkg/logger"
	"github.com/wekeepgrowing/mollie-gateway/pkg/mollie"
	"go.uber.org/zap"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
}

func NewServer(cfg *config.Config, log *zap.Logger, gw handlers.Invoker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logger.WithEchoLogger(e, log, renderError)

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))
	e.Use(middleware.BodyLimit("1M"))

	s := &Server{
		config: cfg,
		logger: log,
		echo:   e,
	}
	s.setupRoutes(gw)
	return s
}

func (s *Server) setupRoutes(gw handlers.Invoker) {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	jwtConfig := auth.JWTConfig{
		Secret: s.config.Server.JWTSecret,
		Logger: s.logger,
	}
	if jwtConfig.Secret == "" {
		s.logger.Warn("server.jwt_secret is empty; " + handlers.Prefix + " is not authenticated")
	}

	api := s.echo.Group(handlers.Prefix, auth.JWTMiddleware(jwtConfig))
	handlers.RegisterRoutes(api, gw, s.logger)
}

// renderError writes framework errors (unknown route, bad method, panics,
// body too large) in the envelope shape.
func renderError(c echo.Context, status int, err error) error {
	appErr := errors.FromHTTPError(err)
	title := http.StatusText(status)
	detail := ""
	if appErr != nil && appErr.Code() != errors.ErrInternal && appErr.Message() != title {
		detail = appErr.Message()
	}
	return c.JSON(status, mollie.Fail[json.RawMessage](status, title, detail))
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	addr := s.config.Server.Address()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
