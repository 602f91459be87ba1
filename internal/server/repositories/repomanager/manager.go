package repomanager

import (
	"context"
	"database/sql"

	"github.com/mbelyaev/bookatable/internal/dbx"
	"github.com/mbelyaev/bookatable/internal/server/repositories/reservations"
	"github.com/mbelyaev/bookatable/internal/server/repositories/restaurants"
	"github.com/mbelyaev/bookatable/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Restaurants(db dbx.DBTX) restaurants.Repository
	Reservations(db dbx.DBTX) reservations.Repository
}
