package reservations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mbelyaev/bookatable/internal/common"
	"github.com/mbelyaev/bookatable/internal/server/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCreate_ReturnsID(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO reservations").
		WithArgs("u1", "r1", "2026-09-01", "19:00", 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("res1"))

	reservation, err := repo.Create(context.Background(), &models.Reservation{
		UserID: "u1", RestaurantID: "r1", Date: "2026-09-01", Time: "19:00", PeopleCount: 2,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if reservation.ID != "res1" {
		t.Fatalf("id mismatch: got %q", reservation.ID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, user_id, restaurant_id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestListByUser_JoinsRestaurantName(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT r.id, r.user_id, r.restaurant_id").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "restaurant_id", "date", "time", "people_count", "name"}).
			AddRow("res1", "u1", "r1", "2026-09-01", "19:00", 2, "Trattoria"))

	list, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(list))
	}
	if list[0].RestaurantName != "Trattoria" {
		t.Fatalf("restaurant name mismatch: got %q", list[0].RestaurantName)
	}
}

func TestUpdate_NoSuchReservation(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE reservations SET").
		WithArgs("2026-09-02", "20:00", 4, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "missing", "2026-09-02", "20:00", 4)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
