// Package httpapi exposes the reservation service as a JSON/REST API.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mbelyaev/bookatable/internal/logging"
	"github.com/mbelyaev/bookatable/internal/server/services"
)

type Server struct {
	address      string
	logger       logging.Logger
	users        *services.UserService
	restaurants  *services.RestaurantService
	reservations *services.ReservationService
	jwtSecret    []byte
	echo         *echo.Echo
}

func NewServer(a string, l logging.Logger, us *services.UserService, rs *services.RestaurantService,
	vs *services.ReservationService, secretKey string) *Server {

	s := &Server{
		address:      a,
		logger:       l.With("module", "http_server"),
		users:        us,
		restaurants:  rs,
		reservations: vs,
		jwtSecret:    []byte(secretKey),
	}
	s.echo = s.buildEcho()
	return s
}

func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// public
	e.POST("/api/users/register", s.handleRegister)
	e.POST("/api/users/login", s.handleLogin)
	e.GET("/api/restaurants", s.handleListRestaurants)

	// authenticated
	authed := e.Group("", s.requireAuth)
	authed.GET("/api/users/me", s.handleMe)
	authed.POST("/api/reservations", s.handleCreateReservation)
	authed.GET("/api/reservations/my", s.handleMyReservations)
	authed.PUT("/api/reservations/:id", s.handleUpdateReservation)
	authed.DELETE("/api/reservations/:id", s.handleDeleteReservation)

	// admin
	admin := e.Group("/api/admin", s.requireAuth, s.requireAdmin)
	admin.GET("/users", s.handleAdminListUsers)
	admin.PUT("/users/:id/role", s.handleAdminUpdateRole)
	admin.DELETE("/users/:id", s.handleAdminDeleteUser)
	admin.GET("/reservations", s.handleAdminListReservations)
	admin.DELETE("/reservations/:id", s.handleAdminDeleteReservation)
	admin.GET("/stats", s.handleAdminStats)
	admin.POST("/restaurants", s.handleAdminCreateRestaurant)
	admin.PUT("/restaurants/:id/photo", s.handleAdminPresignPhoto)

	return e
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
