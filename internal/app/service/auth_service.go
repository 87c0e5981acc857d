package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskcall/internal/core/domain"
	"taskcall/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	issuer         string
	signingKey     []byte
	tokenTTL       time.Duration
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepository ports.UserRepository, issuer string, signingKey []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		issuer:         issuer,
		signingKey:     signingKey,
		tokenTTL:       tokenTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, name, password, phoneNumber string) (*domain.User, error) {
	_, err := s.userRepository.FindByName(ctx, name)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	// Secrets are never stored raw, only their argon2id hash.
	passwordHash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		Name:         name,
		PasswordHash: passwordHash,
		PhoneNumber:  phoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, name, password string) (string, *domain.User, error) {
	user, err := s.userRepository.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	match, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("compare password: %w", err)
	}
	if !match {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (uint64, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, errors.New("unexpected token claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse token subject: %w", err)
	}

	// A structurally valid token is worthless once its user is gone.
	if _, err := s.userRepository.FindLive(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return 0, fmt.Errorf("token user %d: %w", userID, err)
		}
		return 0, err
	}
	return userID, nil
}

func (s *AuthService) generateToken(userID uint64) (string, error) {
	jti, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        jti.String(),
		Issuer:    s.issuer,
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
