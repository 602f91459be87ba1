package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mbelyaev/bookatable/internal/common"
	"github.com/mbelyaev/bookatable/internal/server/models"
)

type createReservationRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PeopleCount  int    `json:"people_count"`
}

type updateReservationRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	PeopleCount int    `json:"people_count"`
}

type reservationResponse struct {
	ID             string `json:"id"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name,omitempty"`
	UserName       string `json:"user_name,omitempty"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PeopleCount    int    `json:"people_count"`
}

func toReservationResponses(list []*models.Reservation) []reservationResponse {
	result := make([]reservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, reservationResponse{
			ID:             r.ID,
			RestaurantID:   r.RestaurantID,
			RestaurantName: r.RestaurantName,
			UserName:       r.UserName,
			Date:           r.Date,
			Time:           r.Time,
			PeopleCount:    r.PeopleCount,
		})
	}
	return result
}

func (s *Server) handleCreateReservation(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(userIDContextKey).(string)

	req := &createReservationRequest{}
	if err := c.Bind(req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	_, err := s.reservations.Create(ctx, userID, req.RestaurantID, req.Date, req.Time, req.PeopleCount)
	if err != nil {
		s.logger.Error(ctx, "reservation create failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return message(c, http.StatusCreated, "Reservation created successfully")
}

func (s *Server) handleMyReservations(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(userIDContextKey).(string)

	list, err := s.reservations.ListForUser(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "reservation listing failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return c.JSON(http.StatusOK, toReservationResponses(list))
}

func (s *Server) handleUpdateReservation(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(userIDContextKey).(string)

	req := &updateReservationRequest{}
	if err := c.Bind(req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	err := s.reservations.Update(ctx, userID, c.Param("id"), req.Date, req.Time, req.PeopleCount)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return message(c, http.StatusNotFound, msgReservationMissing)
		case errors.Is(err, common.ErrorForbidden):
			return message(c, http.StatusForbidden, "Unauthorized to update this reservation")
		default:
			s.logger.Error(ctx, "reservation update failed", "error", err.Error())
			return message(c, http.StatusInternalServerError, msgServerError)
		}
	}

	return message(c, http.StatusOK, "Reservation updated successfully")
}

func (s *Server) handleDeleteReservation(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(userIDContextKey).(string)

	err := s.reservations.Delete(ctx, userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return message(c, http.StatusNotFound, msgReservationMissing)
		case errors.Is(err, common.ErrorForbidden):
			return message(c, http.StatusForbidden, "Unauthorized to delete this reservation")
		default:
			s.logger.Error(ctx, "reservation delete failed", "error", err.Error())
			return message(c, http.StatusInternalServerError, msgServerError)
		}
	}

	return message(c, http.StatusOK, "Reservation deleted successfully")
}
