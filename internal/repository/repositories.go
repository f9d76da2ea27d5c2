package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the statement executor the repositories run on.
// It is satisfied by *pgxpool.Pool and pgx.Tx, and by pgxmock in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Properties   *PropertyRepository
	Reservations *ReservationRepository
}

// NewRepositories constructs the repository container around one executor.
func NewRepositories(db Querier) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Properties:   NewPropertyRepository(db),
		Reservations: NewReservationRepository(db),
	}
}
