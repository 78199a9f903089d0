package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/go-signup/internal/model"
	"github.com/deppfellow/go-signup/internal/sqlerr"
)

// ErrDuplicateEmail is returned by CreateUser when the email address is taken.
var ErrDuplicateEmail = errors.New("email address already exists")

// Querier is the subset of pgxpool.Pool the repositories use.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

const createUserQuery = `
	INSERT INTO users (name, email_address, password_hash)
	VALUES (@name, @email_address, @password_hash)
	RETURNING id, name, email_address, password_hash, created_at, updated_at`

// CreateUser inserts user and returns the stored row.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	rows, err := r.db.Query(ctx, createUserQuery, pgx.NamedArgs{
		"name":          user.Name,
		"email_address": user.EmailAddress,
		"password_hash": user.PasswordHash,
	})
	if err != nil {
		return nil, classifyCreateError(err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, classifyCreateError(err)
	}

	return &created, nil
}

func classifyCreateError(err error) error {
	if sqlerr.IsUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return fmt.Errorf("creating user: %w", err)
}
