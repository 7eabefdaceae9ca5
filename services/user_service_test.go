package services

import (
	"context"
	"testing"

	"auction-house/apperrors"
	"auction-house/models"
	"auction-house/repositories"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := repositories.NewMockUserRepository(ctrl)
	service := NewUserService(mockUsers)

	t.Run("found", func(t *testing.T) {
		view := &models.UserView{
			User:     models.User{ID: "u1", Username: "alice"},
			Products: []models.Product{{ID: "prod-1", SellerID: "u1"}},
		}
		mockUsers.EXPECT().GetWithActivity(gomock.Any(), "u1").Return(view, nil)

		got, err := service.GetUser(context.Background(), "u1")
		require.NoError(t, err)
		require.Equal(t, "alice", got.Username)
		require.Len(t, got.Products, 1)
	})

	t.Run("not_found", func(t *testing.T) {
		mockUsers.EXPECT().GetWithActivity(gomock.Any(), "ghost").Return(nil, apperrors.ErrNotFound)

		_, err := service.GetUser(context.Background(), "ghost")
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
