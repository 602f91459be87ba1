package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/mbelyaev/bookatable/internal/common"
	"github.com/mbelyaev/bookatable/internal/dbx"
	"github.com/mbelyaev/bookatable/internal/logging"
	"github.com/mbelyaev/bookatable/internal/server/config"
	"github.com/mbelyaev/bookatable/internal/server/models"
	"github.com/mbelyaev/bookatable/internal/server/repositories/reservations"
	"github.com/mbelyaev/bookatable/internal/server/repositories/restaurants"
	"github.com/mbelyaev/bookatable/internal/server/repositories/users"
	"github.com/mbelyaev/bookatable/internal/server/services"
)

// --- in-memory fakes ---

type fakeStore struct {
	mu           sync.Mutex
	users        map[string]*models.User
	restaurants  map[string]*models.Restaurant
	reservations map[string]*models.Reservation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[string]*models.User),
		restaurants:  make(map[string]*models.Restaurant),
		reservations: make(map[string]*models.Reservation),
	}
}

type fakeUsersRepo struct{ s *fakeStore }

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, existing := range f.s.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = uuid.NewString()
	f.s.users[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if u, ok := f.s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var result []*models.User
	for _, u := range f.s.users {
		copied := *u
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeUsersRepo) UpdateRole(ctx context.Context, id string, role models.Role) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.s.users, id)
	return nil
}

func (f *fakeUsersRepo) Count(ctx context.Context) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return int64(len(f.s.users)), nil
}

type fakeRestaurantsRepo struct{ s *fakeStore }

func (f *fakeRestaurantsRepo) Create(ctx context.Context, r *models.Restaurant) (*models.Restaurant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r.ID = uuid.NewString()
	f.s.restaurants[r.ID] = r
	return r, nil
}

func (f *fakeRestaurantsRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if r, ok := f.s.restaurants[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRestaurantsRepo) List(ctx context.Context, search string) ([]*models.Restaurant, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var result []*models.Restaurant
	for _, r := range f.s.restaurants {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(r.Location), strings.ToLower(search)) {
			continue
		}
		copied := *r
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeRestaurantsRepo) SetPhotoKey(ctx context.Context, id string, photoKey string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r, ok := f.s.restaurants[id]
	if !ok {
		return common.ErrorNotFound
	}
	r.PhotoKey = photoKey
	return nil
}

type fakeReservationsRepo struct{ s *fakeStore }

func (f *fakeReservationsRepo) Create(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r.ID = uuid.NewString()
	f.s.reservations[r.ID] = r
	return r, nil
}

func (f *fakeReservationsRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if r, ok := f.s.reservations[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeReservationsRepo) ListByUser(ctx context.Context, userID string) ([]*models.Reservation, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var result []*models.Reservation
	for _, r := range f.s.reservations {
		if r.UserID == userID {
			copied := *r
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeReservationsRepo) ListAll(ctx context.Context) ([]*models.Reservation, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var result []*models.Reservation
	for _, r := range f.s.reservations {
		copied := *r
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeReservationsRepo) Update(ctx context.Context, id string, date string, timeOfDay string, peopleCount int) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	r, ok := f.s.reservations[id]
	if !ok {
		return common.ErrorNotFound
	}
	r.Date, r.Time, r.PeopleCount = date, timeOfDay, peopleCount
	return nil
}

func (f *fakeReservationsRepo) Delete(ctx context.Context, id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.reservations[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.s.reservations, id)
	return nil
}

func (f *fakeReservationsRepo) Count(ctx context.Context) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return int64(len(f.s.reservations)), nil
}

type fakeRepoManager struct{ s *fakeStore }

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository {
	return &fakeUsersRepo{s: f.s}
}

func (f *fakeRepoManager) Restaurants(db dbx.DBTX) restaurants.Repository {
	return &fakeRestaurantsRepo{s: f.s}
}

func (f *fakeRepoManager) Reservations(db dbx.DBTX) reservations.Repository {
	return &fakeReservationsRepo{s: f.s}
}

// --- server under test ---

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	server *Server
	store  *fakeStore
	mock   sqlmock.Sqlmock
	cfg    *config.Config
}

// newTestEnv builds a Server on top of in-memory repositories. The sqlmock
// handle backs the transactional paths (reservation update/delete); callers
// that exercise those must set Begin/Commit expectations.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()

	store := newFakeStore()
	rm := &fakeRepoManager{s: store}

	us := services.NewUserService(db, rm, cfg)
	rs := services.NewRestaurantService(db, rm, cfg)
	vs := services.NewReservationService(db, rm, cfg)

	logger := logging.NewSlogLogger(newDiscardLogger())
	srv := NewServer(":0", logger, us, rs, vs, cfg.SecretKey)

	return &testEnv{server: srv, store: store, mock: mock, cfg: cfg}
}

func (e *testEnv) request(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.server.echo.ServeHTTP(rec, req)
	return rec
}
