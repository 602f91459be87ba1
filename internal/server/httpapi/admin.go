package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mbelyaev/bookatable/internal/common"
	"github.com/mbelyaev/bookatable/internal/server/models"
)

type updateRoleRequest struct {
	Role string `json:"role"`
}

type createRestaurantRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (s *Server) handleAdminListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	list, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.Error(ctx, "user listing failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	result := make([]userResponse, 0, len(list))
	for _, u := range list {
		result = append(result, userResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		})
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleAdminUpdateRole(c echo.Context) error {
	ctx := c.Request().Context()

	req := &updateRoleRequest{}
	if err := c.Bind(req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	err := s.users.UpdateRole(ctx, c.Param("id"), models.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidRole):
			return message(c, http.StatusBadRequest, "Invalid role")
		case errors.Is(err, common.ErrorNotFound):
			return message(c, http.StatusNotFound, msgUserNotFound)
		default:
			s.logger.Error(ctx, "role update failed", "error", err.Error())
			return message(c, http.StatusInternalServerError, msgServerError)
		}
	}

	return message(c, http.StatusOK, "User role updated successfully")
}

func (s *Server) handleAdminDeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	if err := s.users.DeleteUser(ctx, c.Param("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return message(c, http.StatusNotFound, msgUserNotFound)
		}
		s.logger.Error(ctx, "user delete failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return message(c, http.StatusOK, "User deleted successfully")
}

func (s *Server) handleAdminListReservations(c echo.Context) error {
	ctx := c.Request().Context()

	list, err := s.reservations.ListAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "reservation listing failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return c.JSON(http.StatusOK, toReservationResponses(list))
}

func (s *Server) handleAdminDeleteReservation(c echo.Context) error {
	ctx := c.Request().Context()

	if err := s.reservations.AdminDelete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return message(c, http.StatusNotFound, msgReservationMissing)
		}
		s.logger.Error(ctx, "reservation delete failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return message(c, http.StatusOK, "Reservation deleted successfully")
}

func (s *Server) handleAdminStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := s.reservations.GetStats(ctx)
	if err != nil {
		s.logger.Error(ctx, "stats query failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users":        stats.Users,
		"reservations": stats.Reservations,
	})
}

func (s *Server) handleAdminCreateRestaurant(c echo.Context) error {
	ctx := c.Request().Context()

	req := &createRestaurantRequest{}
	if err := c.Bind(req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	restaurant, err := s.restaurants.Create(ctx, req.Name, req.Location, req.Description)
	if err != nil {
		s.logger.Error(ctx, "restaurant create failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return c.JSON(http.StatusCreated, restaurantResponse{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Location:    restaurant.Location,
		Description: restaurant.Description,
	})
}

func (s *Server) handleAdminPresignPhoto(c echo.Context) error {
	ctx := c.Request().Context()

	key, url, err := s.restaurants.PresignPhotoUpload(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return message(c, http.StatusNotFound, "Restaurant not found")
		}
		s.logger.Error(ctx, "photo presign failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"object_key": key,
		"upload_url": url,
	})
}
