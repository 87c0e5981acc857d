package ports

import (
	"context"

	"taskcall/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// FindByName looks a live user up by name; signup uses it to detect
	// duplicates, login to fetch the stored password hash.
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindLive(ctx context.Context, userID uint64) (*domain.User, error)
}

type AuthService interface {
	Signup(ctx context.Context, name, password, phoneNumber string) (*domain.User, error)
	Login(ctx context.Context, name, password string) (string, *domain.User, error)
	// VerifyToken validates a bearer token and returns the user id it was
	// issued for. Tokens of soft-deleted users are rejected.
	VerifyToken(ctx context.Context, token string) (uint64, error)
}
