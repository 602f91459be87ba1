package reservations

import (
	"context"

	"github.com/mbelyaev/bookatable/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// ListByUser returns the user's reservations joined with restaurant names.
	ListByUser(ctx context.Context, userID string) ([]*models.Reservation, error)
	// ListAll returns every reservation joined with user and restaurant names,
	// newest date first.
	ListAll(ctx context.Context) ([]*models.Reservation, error)
	Update(ctx context.Context, id string, date string, timeOfDay string, peopleCount int) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
