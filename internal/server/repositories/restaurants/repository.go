package restaurants

import (
	"context"

	"github.com/mbelyaev/bookatable/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error)
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	// List returns all restaurants, or only those whose name or location
	// contains search (case-insensitive) when search is non-empty.
	List(ctx context.Context, search string) ([]*models.Restaurant, error)
	SetPhotoKey(ctx context.Context, id string, photoKey string) error
}
