package services

import (
	"context"

	"auction-house/models"
	"auction-house/repositories"
)

// UserService serves the public user view: the account plus the products
// it sells and the bids it has placed.
type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.UserView, error) {
	return s.users.GetWithActivity(ctx, id)
}
