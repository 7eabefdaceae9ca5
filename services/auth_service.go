package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-house/apperrors"
	"auction-house/models"
	"auction-house/repositories"
	"auction-house/utils"
)

// AuthService is the identity collaborator: it creates accounts and issues
// tokens. The auction core only ever consumes the resulting identity.
type AuthService struct {
	users     repositories.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users repositories.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("service: failed to check email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       utils.GenerateID(),
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("service: failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, fmt.Errorf("service: failed to issue token: %w", err)
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service: failed to look up user: %w", err)
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, fmt.Errorf("service: failed to issue token: %w", err)
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}
