package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/mbelyaev/bookatable/internal/common"
	"github.com/mbelyaev/bookatable/internal/server/config"
	"github.com/mbelyaev/bookatable/internal/server/models"
	"github.com/mbelyaev/bookatable/internal/server/repositories/repomanager"
)

type RestaurantService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewRestaurantService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *RestaurantService {
	return &RestaurantService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

// List returns restaurants, filtered by a name/location substring when
// search is non-empty.
func (s *RestaurantService) List(ctx context.Context, search string) ([]*models.Restaurant, error) {

	repo := s.repomanager.Restaurants(s.db)
	result, err := repo.List(ctx, search)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return result, nil
}

// Create adds a new restaurant.
func (s *RestaurantService) Create(ctx context.Context, name, location, description string) (*models.Restaurant, error) {

	restaurant := &models.Restaurant{
		Name:        name,
		Location:    location,
		Description: description,
	}

	repo := s.repomanager.Restaurants(s.db)

	restaurant, err := repo.Create(ctx, restaurant)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return restaurant, nil
}

// getRandomPhotoKey builds an object key for a restaurant photo.
func getRandomPhotoKey(restaurantID string) string {
	d := time.Now()
	return fmt.Sprintf("restaurants/%s/%d/%d/%v", restaurantID, d.Year(), d.Month(), uuid.New())
}

func (s *RestaurantService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// PresignPhotoUpload returns a presigned PUT URL (valid 15 minutes) for the
// restaurant photo and records the object key on the restaurant row. Unknown
// restaurants yield common.ErrorNotFound.
func (s *RestaurantService) PresignPhotoUpload(ctx context.Context, restaurantID string) (string, string, error) {

	repo := s.repomanager.Restaurants(s.db)

	if _, err := repo.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", "", common.ErrorNotFound
		}
		return "", "", common.ErrorInternal
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", common.ErrorInternal
	}

	bucket := s.config.S3Bucket
	key := getRandomPhotoKey(restaurantID)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", common.ErrorInternal
	}

	if err := repo.SetPhotoKey(ctx, restaurantID, key); err != nil {
		return "", "", common.ErrorInternal
	}

	return key, req.URL, nil
}
