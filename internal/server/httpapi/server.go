// Package httpapi exposes the public JSON API over echo: auth endpoints,
// content listings, form submissions, and a liveness probe.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/esportshub/backend/internal/logging"
	"github.com/esportshub/backend/internal/server/services"
)

// Options tunes the HTTP surface.
type Options struct {
	// AllowOrigin is the Access-Control-Allow-Origin value sent on every
	// response.
	AllowOrigin string
}

// Server wires the services into an echo instance.
type Server struct {
	echo    *echo.Echo
	log     logging.Logger
	users   *services.UserService
	content *services.ContentService
	forms   *services.FormsService
}

// NewServer builds the echo instance with middleware and routes registered.
func NewServer(log logging.Logger, users *services.UserService, content *services.ContentService, forms *services.FormsService, opts Options) *Server {
	s := &Server{
		echo:    echo.New(),
		log:     log,
		users:   users,
		content: content,
		forms:   forms,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.HTTPErrorHandler = s.errorHandler

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Use(corsMiddleware(opts.AllowOrigin))
	s.echo.Use(requestLogger(log))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/healthz", s.healthz)

	api := s.echo.Group("/api")
	api.POST("/register", s.register)
	api.POST("/login", s.login)

	api.GET("/news", s.news)
	api.GET("/tournaments", s.tournaments)
	api.GET("/teams", s.teams)
	api.GET("/players", s.players)

	api.POST("/contact", s.contact)
	api.POST("/newsletter", s.newsletter)
	api.POST("/tournament-register", s.tournamentRegister)
}

// Start runs the server on addr and blocks until it stops.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// errorHandler rewrites router-level failures into the API's error shape.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			_ = c.JSON(http.StatusNotFound, errorResponse{Error: "Endpoint not found"})
		case http.StatusMethodNotAllowed:
			_ = c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		default:
			_ = c.JSON(he.Code, errorResponse{Error: http.StatusText(he.Code)})
		}
		return
	}

	s.log.Error(c.Request().Context(), "unhandled request error", "error", err)
	_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: "An error occurred"})
}
