package repository

import (
	"context"
	"strings"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/jackc/pgx/v5"
)

const (
	getUserByEmailSQL = `SELECT id, name, email, password
FROM users
WHERE email = $1;`

	getUserByIDSQL = `SELECT id, name, email, password
FROM users
WHERE id = $1;`

	insertUserSQL = `INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING id, name, email, password;`
)

// UserRepository reads and writes the users table.
type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail looks a user up by email, case-insensitively.
// A missing user is an errs.KindNotFound error.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.db.QueryRow(ctx, getUserByEmailSQL, strings.ToLower(email))
	return scanUser(row)
}

// GetByID looks a user up by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.db.QueryRow(ctx, getUserByIDSQL, id)
	return scanUser(row)
}

// Add inserts a user and returns the stored row. The email is stored
// lower-cased so GetByEmail finds it.
func (r *UserRepository) Add(ctx context.Context, user model.NewUser) (*model.User, error) {
	if err := validation.Input(user); err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, insertUserSQL, user.Name, strings.ToLower(user.Email), user.Password)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable("users", err))
	}
	return &u, nil
}
