package services

import (
	"context"
	"testing"
	"time"

	"auction-house/apperrors"
	"auction-house/models"
	"auction-house/repositories"
	"auction-house/utils"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testSecret = "auction-house-test-secret"

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := repositories.NewMockUserRepository(ctrl)
	service := NewAuthService(mockUsers, testSecret, time.Hour)

	req := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "hunter22"}

	t.Run("success", func(t *testing.T) {
		mockUsers.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, apperrors.ErrNotFound)
		mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := service.Register(context.Background(), req)
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)

		claims, err := utils.ValidateToken(resp.Token, testSecret)
		require.NoError(t, err)
		require.Equal(t, resp.User.ID, claims.UserID)
		require.False(t, claims.IsAdmin, "self-registration never grants admin")

		ok, err := utils.VerifyPassword(resp.User.Password, "hunter22")
		require.NoError(t, err)
		require.True(t, ok, "stored password must be a verifiable hash")
	})

	t.Run("email_taken", func(t *testing.T) {
		mockUsers.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(&models.User{ID: "u1"}, nil)

		_, err := service.Register(context.Background(), req)
		require.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := repositories.NewMockUserRepository(ctrl)
	service := NewAuthService(mockUsers, testSecret, time.Hour)

	hashed, err := utils.HashPassword("hunter22")
	require.NoError(t, err)

	user := &models.User{ID: "u1", Email: "alice@example.com", Password: hashed, IsAdmin: true}

	t.Run("success", func(t *testing.T) {
		mockUsers.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

		resp, err := service.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "hunter22"})
		require.NoError(t, err)

		claims, err := utils.ValidateToken(resp.Token, testSecret)
		require.NoError(t, err)
		require.Equal(t, "u1", claims.UserID)
		require.True(t, claims.IsAdmin, "admin flag travels in the token")
	})

	t.Run("wrong_password", func(t *testing.T) {
		mockUsers.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(user, nil)

		_, err := service.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown_email", func(t *testing.T) {
		mockUsers.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, apperrors.ErrNotFound)

		_, err := service.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "hunter22"})
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		actor   models.Identity
		allowed bool
	}{
		{name: "owner", ownerID: "u1", actor: models.Identity{ID: "u1"}, allowed: true},
		{name: "admin_override", ownerID: "u1", actor: models.Identity{ID: "u2", IsAdmin: true}, allowed: true},
		{name: "stranger", ownerID: "u1", actor: models.Identity{ID: "u2"}, allowed: false},
		{name: "empty_actor", ownerID: "u1", actor: models.Identity{}, allowed: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.allowed, OwnerOrAdmin(tc.ownerID, tc.actor))
		})
	}
}
