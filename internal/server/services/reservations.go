package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mbelyaev/bookatable/internal/common"
	"github.com/mbelyaev/bookatable/internal/dbx"
	"github.com/mbelyaev/bookatable/internal/server/config"
	"github.com/mbelyaev/bookatable/internal/server/models"
	"github.com/mbelyaev/bookatable/internal/server/repositories/repomanager"
)

type ReservationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewReservationService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ReservationService {
	return &ReservationService{
		db:          db,
		repomanager: m,
	}
}

// Stats holds the counters shown on the admin dashboard.
type Stats struct {
	Users        int64
	Reservations int64
}

// Create books a table for the given user.
func (s *ReservationService) Create(ctx context.Context, userID, restaurantID, date, timeOfDay string, peopleCount int) (*models.Reservation, error) {

	reservation := &models.Reservation{
		UserID:       userID,
		RestaurantID: restaurantID,
		Date:         date,
		Time:         timeOfDay,
		PeopleCount:  peopleCount,
	}

	repo := s.repomanager.Reservations(s.db)

	reservation, err := repo.Create(ctx, reservation)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return reservation, nil
}

// ListForUser returns the caller's reservations with restaurant names.
func (s *ReservationService) ListForUser(ctx context.Context, userID string) ([]*models.Reservation, error) {

	repo := s.repomanager.Reservations(s.db)
	result, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return result, nil
}

// ListAll returns every reservation with user and restaurant names.
func (s *ReservationService) ListAll(ctx context.Context) ([]*models.Reservation, error) {

	repo := s.repomanager.Reservations(s.db)
	result, err := repo.ListAll(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return result, nil
}

// Update changes date, time and party size of a reservation. Only the owner
// may update; someone else's reservation yields common.ErrorForbidden, an
// unknown id common.ErrorNotFound. The ownership check and the write run on
// one transaction.
func (s *ReservationService) Update(ctx context.Context, userID, id, date, timeOfDay string, peopleCount int) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Reservations(tx)

		reservation, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if reservation.UserID != userID {
			return common.ErrorForbidden
		}

		return repo.Update(ctx, id, date, timeOfDay, peopleCount)
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorForbidden) {
			return err
		}
		return common.ErrorInternal
	}

	return nil
}

// Delete cancels a reservation owned by userID, with the same ownership
// semantics as Update.
func (s *ReservationService) Delete(ctx context.Context, userID, id string) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Reservations(tx)

		reservation, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if reservation.UserID != userID {
			return common.ErrorForbidden
		}

		return repo.Delete(ctx, id)
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorForbidden) {
			return err
		}
		return common.ErrorInternal
	}

	return nil
}

// AdminDelete cancels any reservation, regardless of owner.
func (s *ReservationService) AdminDelete(ctx context.Context, id string) error {

	repo := s.repomanager.Reservations(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return common.ErrorInternal
	}

	return nil
}

// GetStats counts users and reservations for the admin dashboard.
func (s *ReservationService) GetStats(ctx context.Context) (*Stats, error) {

	userCount, err := s.repomanager.Users(s.db).Count(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}

	reservationCount, err := s.repomanager.Reservations(s.db).Count(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Stats{Users: userCount, Reservations: reservationCount}, nil
}
