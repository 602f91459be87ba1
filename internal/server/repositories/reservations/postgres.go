package reservations

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

func (r *PostgresRepository) Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {

	query :=
		`INSERT INTO reservations (user_id, restaurant_id, date, time, people_count)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		reservation.UserID, reservation.RestaurantID, reservation.Date,
		reservation.Time, reservation.PeopleCount).Scan(&reservation.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reservation, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	query :=
		`SELECT id, user_id, restaurant_id, to_char(date, 'YYYY-MM-DD'), time, people_count
		 FROM reservations
		 WHERE id = $1
		 `

	reservation := &models.Reservation{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&reservation.ID, &reservation.UserID, &reservation.RestaurantID,
		&reservation.Date, &reservation.Time, &reservation.PeopleCount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reservation, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Reservation, error) {
	query :=
		`SELECT r.id, r.user_id, r.restaurant_id, to_char(r.date, 'YYYY-MM-DD'), r.time,
		        r.people_count, res.name
		 FROM reservations r
		 JOIN restaurants res ON r.restaurant_id = res.id
		 WHERE r.user_id = $1
		 ORDER BY r.date
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Reservation
	for rows.Next() {
		reservation := &models.Reservation{}
		if err := rows.Scan(&reservation.ID, &reservation.UserID, &reservation.RestaurantID,
			&reservation.Date, &reservation.Time, &reservation.PeopleCount,
			&reservation.RestaurantName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Reservation, error) {
	query :=
		`SELECT r.id, r.user_id, r.restaurant_id, to_char(r.date, 'YYYY-MM-DD'), r.time,
		        r.people_count, u.name, res.name
		 FROM reservations r
		 JOIN users u ON r.user_id = u.id
		 JOIN restaurants res ON r.restaurant_id = res.id
		 ORDER BY r.date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Reservation
	for rows.Next() {
		reservation := &models.Reservation{}
		if err := rows.Scan(&reservation.ID, &reservation.UserID, &reservation.RestaurantID,
			&reservation.Date, &reservation.Time, &reservation.PeopleCount,
			&reservation.UserName, &reservation.RestaurantName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, date string, timeOfDay string, peopleCount int) error {
	query :=
		`UPDATE reservations SET date = $1, time = $2, people_count = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, date, timeOfDay, peopleCount, id)
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

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM reservations
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
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

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}
