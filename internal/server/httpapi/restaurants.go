package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mbelyaev/bookatable/internal/server/models"
)

type restaurantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PhotoKey    string `json:"photo_key,omitempty"`
}

func toRestaurantResponses(list []*models.Restaurant) []restaurantResponse {
	result := make([]restaurantResponse, 0, len(list))
	for _, r := range list {
		result = append(result, restaurantResponse{
			ID:          r.ID,
			Name:        r.Name,
			Location:    r.Location,
			Description: r.Description,
			PhotoKey:    r.PhotoKey,
		})
	}
	return result
}

func (s *Server) handleListRestaurants(c echo.Context) error {
	ctx := c.Request().Context()

	list, err := s.restaurants.List(ctx, c.QueryParam("search"))
	if err != nil {
		s.logger.Error(ctx, "restaurant listing failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return c.JSON(http.StatusOK, toRestaurantResponses(list))
}
