// Package rest exposes the journal service over HTTP: the authentication
// and entry routes, the access-token guard, and request logging.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"journal-api/internal/cryptox"
	"journal-api/internal/logging"
	"journal-api/internal/server/entries"
	"journal-api/internal/server/users"
)

// userService is the slice of users.Service the handlers need.
type userService interface {
	Register(ctx context.Context, name, email, password string) (*users.TokenPair, error)
	Login(ctx context.Context, email, password string) (*users.TokenPair, error)
	Renew(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type Server struct {
	echo              *echo.Echo
	address           string
	logger            logging.Logger
	users             userService
	entries           entries.Repository
	cipher            *cryptox.Cipher
	accessTokenSecret []byte
}

func NewServer(address string, l logging.Logger, us userService, er entries.Repository, cipher *cryptox.Cipher, accessTokenSecret string) *Server {
	s := &Server{
		echo:              echo.New(),
		address:           address,
		logger:            l.With("module", "http_server"),
		users:             us,
		entries:           er,
		cipher:            cipher,
		accessTokenSecret: []byte(accessTokenSecret),
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(s.requestLogger())
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	authGroup := s.echo.Group("/authentication")
	authGroup.POST("/login", s.login)
	authGroup.POST("/register", s.register)
	authGroup.DELETE("/logout", s.logout)
	authGroup.POST("/generate", s.generate)
	authGroup.POST("/forgotPassword", s.forgotPassword)
	authGroup.PUT("/resetPassword/:token", s.resetPassword)

	entryGroup := s.echo.Group("/entries", s.requireAuth())
	entryGroup.GET("/fetchAll", s.fetchAll)
	entryGroup.GET("/fetchOne", s.fetchOne)
	entryGroup.POST("/save", s.saveEntry)
	entryGroup.PUT("/update", s.updateEntry)
	entryGroup.DELETE("/delete", s.deleteEntry)
}

// requestLogger logs one line per request with method, path, and status.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			s.logger.Info(c.Request().Context(), "request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
			)
			return err
		}
	}
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.echo.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
