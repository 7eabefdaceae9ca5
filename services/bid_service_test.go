package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-house/apperrors"
	"auction-house/models"
	"auction-house/repositories"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBidService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBids := repositories.NewMockBidRepository(ctrl)
	mockProducts := repositories.NewMockProductRepository(ctrl)
	service := NewBidService(mockBids, mockProducts)

	bidder := models.Identity{ID: "bidder-1"}
	product := &models.Product{ID: "prod-1", SellerID: "seller-1", OriginalPrice: 100}

	t.Run("valid_bid", func(t *testing.T) {
		mockProducts.EXPECT().Get(gomock.Any(), "prod-1").Return(product, nil)
		mockBids.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		before := time.Now().UTC()
		bid, err := service.PlaceBid(context.Background(), "prod-1", models.PlaceBidRequest{Price: 150}, bidder)

		require.NoError(t, err)
		_, parseErr := uuid.Parse(bid.ID)
		require.NoError(t, parseErr, "bid ID should be a valid UUID")
		require.Equal(t, "prod-1", bid.ProductID)
		require.Equal(t, "bidder-1", bid.BidderID)
		require.Equal(t, float64(150), bid.Price)
		require.WithinDuration(t, before, bid.Date, 2*time.Second)
	})

	t.Run("client_supplied_date_ignored", func(t *testing.T) {
		mockProducts.EXPECT().Get(gomock.Any(), "prod-1").Return(product, nil)
		mockBids.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		forged := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
		bid, err := service.PlaceBid(context.Background(), "prod-1", models.PlaceBidRequest{Price: 150, Date: forged}, bidder)

		require.NoError(t, err)
		require.WithinDuration(t, time.Now().UTC(), bid.Date, 2*time.Second)
		require.NotEqual(t, forged, bid.Date)
	})

	t.Run("below_original_price_still_accepted", func(t *testing.T) {
		mockProducts.EXPECT().Get(gomock.Any(), "prod-1").Return(product, nil)
		mockBids.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		bid, err := service.PlaceBid(context.Background(), "prod-1", models.PlaceBidRequest{Price: 1}, bidder)
		require.NoError(t, err)
		require.Equal(t, float64(1), bid.Price)
	})

	t.Run("zero_price", func(t *testing.T) {
		_, err := service.PlaceBid(context.Background(), "prod-1", models.PlaceBidRequest{Price: 0}, bidder)
		ve, ok := apperrors.AsValidation(err)
		require.True(t, ok, "expected validation error, got: %v", err)
		require.Equal(t, []string{"price"}, ve.Fields)
	})

	t.Run("negative_price", func(t *testing.T) {
		_, err := service.PlaceBid(context.Background(), "prod-1", models.PlaceBidRequest{Price: -50}, bidder)
		_, ok := apperrors.AsValidation(err)
		require.True(t, ok)
	})

	t.Run("product_not_found", func(t *testing.T) {
		mockProducts.EXPECT().Get(gomock.Any(), "missing").Return(nil, apperrors.ErrNotFound)

		_, err := service.PlaceBid(context.Background(), "missing", models.PlaceBidRequest{Price: 150}, bidder)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("repo_failure_wrapped", func(t *testing.T) {
		mockProducts.EXPECT().Get(gomock.Any(), "prod-1").Return(product, nil)
		mockBids.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := service.PlaceBid(context.Background(), "prod-1", models.PlaceBidRequest{Price: 150}, bidder)
		require.Error(t, err)
		require.NotErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestBidService_DeleteBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBids := repositories.NewMockBidRepository(ctrl)
	mockProducts := repositories.NewMockProductRepository(ctrl)
	service := NewBidService(mockBids, mockProducts)

	bid := &models.Bid{ID: "bid-1", ProductID: "prod-1", BidderID: "bidder-1", Price: 150}

	tests := []struct {
		name          string
		actor         models.Identity
		mockSetup     func()
		expectedError error
	}{
		{
			name:  "bidder_deletes_own_bid",
			actor: models.Identity{ID: "bidder-1"},
			mockSetup: func() {
				mockBids.EXPECT().Get(gomock.Any(), "bid-1").Return(bid, nil)
				mockBids.EXPECT().Delete(gomock.Any(), "bid-1").Return(nil)
			},
		},
		{
			name:  "admin_deletes_any_bid",
			actor: models.Identity{ID: "admin-1", IsAdmin: true},
			mockSetup: func() {
				mockBids.EXPECT().Get(gomock.Any(), "bid-1").Return(bid, nil)
				mockBids.EXPECT().Delete(gomock.Any(), "bid-1").Return(nil)
			},
		},
		{
			name:  "other_user_forbidden",
			actor: models.Identity{ID: "stranger"},
			mockSetup: func() {
				mockBids.EXPECT().Get(gomock.Any(), "bid-1").Return(bid, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:  "already_deleted_bid_reports_not_found",
			actor: models.Identity{ID: "bidder-1"},
			mockSetup: func() {
				mockBids.EXPECT().Get(gomock.Any(), "bid-1").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			err := service.DeleteBid(context.Background(), "bid-1", tc.actor)

			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
