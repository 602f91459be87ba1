package restaurants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mbelyaev/bookatable/internal/common"
	"github.com/mbelyaev/bookatable/internal/dbx"
	"github.com/mbelyaev/bookatable/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {

	query :=
		`INSERT INTO restaurants (name, location, description)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		restaurant.Name, restaurant.Location, restaurant.Description).Scan(&restaurant.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return restaurant, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	query :=
		`SELECT id, name, location, description, photo_key FROM restaurants
		 WHERE id = $1
		 `

	restaurant := &models.Restaurant{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.Location, &restaurant.Description, &restaurant.PhotoKey)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return restaurant, nil
}

func (r *PostgresRepository) List(ctx context.Context, search string) ([]*models.Restaurant, error) {

	query := `SELECT id, name, location, description, photo_key FROM restaurants`
	var args []any
	if search != "" {
		query += ` WHERE name ILIKE $1 OR location ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Restaurant
	for rows.Next() {
		restaurant := &models.Restaurant{}
		if err := rows.Scan(&restaurant.ID, &restaurant.Name, &restaurant.Location,
			&restaurant.Description, &restaurant.PhotoKey); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) SetPhotoKey(ctx context.Context, id string, photoKey string) error {
	query :=
		`UPDATE restaurants SET photo_key = $1
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, photoKey, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
