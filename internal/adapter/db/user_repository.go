package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskcall/internal/core/domain"
	"taskcall/internal/core/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64       `db:"id"`
	Name         string       `db:"name"`
	PasswordHash string       `db:"password_hash"`
	PhoneNumber  string       `db:"phone_number"`
	Priority     int          `db:"priority"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
INSERT INTO users (name, password_hash, phone_number, priority, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`
	result, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.PasswordHash,
		user.PhoneNumber,
		user.Priority,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = uint64(id)
	return nil
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	const query = `
SELECT id, name, password_hash, phone_number, priority, created_at, updated_at, deleted_at
FROM users
WHERE name = ? AND deleted_at IS NULL
`
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user := mapUserRowToDomainUser(row)
	return &user, nil
}

func (r *UserRepository) FindLive(ctx context.Context, userID uint64) (*domain.User, error) {
	const query = `
SELECT id, name, password_hash, phone_number, priority, created_at, updated_at, deleted_at
FROM users
WHERE id = ? AND deleted_at IS NULL
`
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user := mapUserRowToDomainUser(row)
	return &user, nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		ID:           row.ID,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		PhoneNumber:  row.PhoneNumber,
		Priority:     row.Priority,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.DeletedAt.Valid {
		value := row.DeletedAt.Time
		user.DeletedAt = &value
	}

	return user
}
