package controllers

import (
	"net/http"
	"testing"

	"auction-house/apperrors"
	"auction-house/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	router := gin.New()
	router.GET("/api/users/:userId", NewUserController(mockService).GetUser)

	t.Run("found_with_activity", func(t *testing.T) {
		view := &models.UserView{
			User:     models.User{ID: "u1", Username: "alice", Password: "sekret-hash"},
			Products: []models.Product{{ID: "prod-1", SellerID: "u1"}},
			Bids: []models.BidWithProduct{
				{Bid: models.Bid{ID: "bid-1", BidderID: "u1"}, Product: &models.Product{ID: "prod-2"}},
			},
		}
		mockService.EXPECT().GetUser(gomock.Any(), "u1").Return(view, nil)

		w := performRequest(t, router, http.MethodGet, "/api/users/u1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		require.Contains(t, body, `"username":"alice"`)
		require.Contains(t, body, `"products"`)
		require.Contains(t, body, `"bids"`)
		require.NotContains(t, body, "sekret-hash", "password hash never leaves the API")
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, apperrors.ErrNotFound)

		w := performRequest(t, router, http.MethodGet, "/api/users/ghost", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
