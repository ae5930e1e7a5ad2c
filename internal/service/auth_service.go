package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"donorlink/internal/auth"
	apperrors "donorlink/internal/errors"
	"donorlink/internal/model"
	"donorlink/internal/repository"
)

// AuthService handles login.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates an authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a bearer token carrying the user
// record minus password. Every failure mode collapses into a single
// authentication error so callers cannot probe which emails exist.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrAuthenticationFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.ErrAuthenticationFailed
	}

	token, err := s.jwtService.Issue(user)
	if err != nil {
		return "", nil, apperrors.ErrAuthenticationFailed
	}

	return token, user, nil
}
