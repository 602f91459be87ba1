// Package services contains the business operations of the reservation
// server, layered between the HTTP handlers and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mbelyaev/bookatable/internal/common"
	"github.com/mbelyaev/bookatable/internal/server/auth"
	"github.com/mbelyaev/bookatable/internal/server/config"
	"github.com/mbelyaev/bookatable/internal/server/models"
	"github.com/mbelyaev/bookatable/internal/server/repositories/repomanager"
)

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new account with the standard role. A taken email
// yields common.ErrorAlreadyExists and leaves the existing record untouched.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// email and wrong password are indistinguishable to the caller: both yield
// common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetProfile returns the user record for id, or common.ErrorNotFound when
// the row no longer exists.
func (s *UserService) GetProfile(ctx context.Context, id string) (*models.User, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// RoleFor looks up the current role of id at call time. A vanished identity
// yields common.ErrorForbidden: the caller's token may still verify, but
// authorization must fail.
func (s *UserService) RoleFor(ctx context.Context, id string) (models.Role, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorForbidden
		}
		return "", common.ErrorInternal
	}

	return user.Role, nil
}

// ListUsers returns every account without password hashes.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {

	repo := s.repomanager.Users(s.db)
	result, err := repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return result, nil
}

// UpdateRole sets the role of the given account. Roles outside the two-value
// enum are rejected with common.ErrorInvalidRole. Demoting oneself is
// allowed.
func (s *UserService) UpdateRole(ctx context.Context, id string, role models.Role) error {

	if !role.Valid() {
		return common.ErrorInvalidRole
	}

	repo := s.repomanager.Users(s.db)
	if err := repo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	return nil
}

// DeleteUser removes the account. Deleting oneself is allowed.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {

	repo := s.repomanager.Users(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	return nil
}
