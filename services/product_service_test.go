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

func TestProductService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repositories.NewMockProductRepository(ctrl)
	service := NewProductService(mockRepo)

	seller := models.Identity{ID: "seller-1"}
	endDate := time.Now().Add(48 * time.Hour)

	validReq := models.CreateProductRequest{
		Name:          "Vintage clock",
		Description:   "A very old clock",
		PictureURL:    "https://example.com/clock.jpg",
		Category:      "antiques",
		OriginalPrice: 10,
		EndDate:       endDate,
	}

	tests := []struct {
		name          string
		req           models.CreateProductRequest
		mockSetup     func()
		expectFields  []string
		expectSuccess bool
	}{
		{
			name: "valid_product",
			req:  validReq,
			mockSetup: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectSuccess: true,
		},
		{
			name: "missing_name_and_category",
			req: models.CreateProductRequest{
				Description:   "desc",
				PictureURL:    "https://example.com/p.jpg",
				OriginalPrice: 50,
				EndDate:       endDate,
			},
			mockSetup:    func() {},
			expectFields: []string{"name", "category"},
		},
		{
			name: "zero_original_price",
			req: func() models.CreateProductRequest {
				r := validReq
				r.OriginalPrice = 0
				return r
			}(),
			mockSetup:    func() {},
			expectFields: []string{"originalPrice"},
		},
		{
			name: "negative_original_price",
			req: func() models.CreateProductRequest {
				r := validReq
				r.OriginalPrice = -5
				return r
			}(),
			mockSetup:    func() {},
			expectFields: []string{"originalPrice"},
		},
		{
			name: "past_end_date",
			req: func() models.CreateProductRequest {
				r := validReq
				r.EndDate = time.Now().Add(-time.Hour)
				return r
			}(),
			mockSetup:    func() {},
			expectFields: []string{"endDate"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			product, err := service.CreateProduct(context.Background(), tc.req, seller)

			if tc.expectSuccess {
				require.NoError(t, err)
				require.NotNil(t, product)

				_, parseErr := uuid.Parse(product.ID)
				require.NoError(t, parseErr, "product ID should be a valid UUID")
				require.Equal(t, seller.ID, product.SellerID)
				require.Equal(t, float64(10), product.OriginalPrice)
				return
			}

			require.Error(t, err)
			ve, ok := apperrors.AsValidation(err)
			require.True(t, ok, "expected a validation error, got: %v", err)
			require.ElementsMatch(t, tc.expectFields, ve.Fields)
		})
	}
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repositories.NewMockProductRepository(ctrl)
	service := NewProductService(mockRepo)

	existing := func() *models.Product {
		return &models.Product{
			ID:            "prod-1",
			Name:          "Old lamp",
			Description:   "Brass lamp",
			PictureURL:    "https://example.com/lamp.jpg",
			Category:      "lighting",
			OriginalPrice: 100,
			EndDate:       time.Now().Add(72 * time.Hour),
			SellerID:      "seller-1",
		}
	}

	t.Run("not_found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "missing").Return(nil, apperrors.ErrNotFound)

		_, err := service.UpdateProduct(context.Background(), "missing", models.UpdateProductRequest{}, models.Identity{ID: "seller-1"})
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("non_owner_forbidden", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(existing(), nil)

		_, err := service.UpdateProduct(context.Background(), "prod-1", models.UpdateProductRequest{Name: "Hacked"}, models.Identity{ID: "stranger"})
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("seller_partial_update", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(existing(), nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := service.UpdateProduct(context.Background(), "prod-1", models.UpdateProductRequest{Name: "New lamp"}, models.Identity{ID: "seller-1"})
		require.NoError(t, err)
		require.Equal(t, "New lamp", updated.Name)
		require.Equal(t, "Brass lamp", updated.Description, "unset fields stay untouched")
		require.Equal(t, "seller-1", updated.SellerID, "seller is never reassigned")
	})

	t.Run("admin_override", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(existing(), nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := service.UpdateProduct(context.Background(), "prod-1", models.UpdateProductRequest{Category: "decor"}, models.Identity{ID: "admin-1", IsAdmin: true})
		require.NoError(t, err)
		require.Equal(t, "decor", updated.Category)
	})

	t.Run("invalid_price_rejected", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(existing(), nil)

		_, err := service.UpdateProduct(context.Background(), "prod-1", models.UpdateProductRequest{OriginalPrice: -10}, models.Identity{ID: "seller-1"})
		ve, ok := apperrors.AsValidation(err)
		require.True(t, ok)
		require.Equal(t, []string{"originalPrice"}, ve.Fields)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repositories.NewMockProductRepository(ctrl)
	service := NewProductService(mockRepo)

	product := &models.Product{ID: "prod-1", SellerID: "seller-1"}

	tests := []struct {
		name          string
		actor         models.Identity
		mockSetup     func()
		expectedError error
	}{
		{
			name:  "seller_deletes_own_product",
			actor: models.Identity{ID: "seller-1"},
			mockSetup: func() {
				mockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(product, nil)
				mockRepo.EXPECT().DeleteWithBids(gomock.Any(), "prod-1").Return(nil)
			},
		},
		{
			name:  "admin_deletes_any_product",
			actor: models.Identity{ID: "admin-1", IsAdmin: true},
			mockSetup: func() {
				mockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(product, nil)
				mockRepo.EXPECT().DeleteWithBids(gomock.Any(), "prod-1").Return(nil)
			},
		},
		{
			name:  "non_owner_forbidden",
			actor: models.Identity{ID: "stranger"},
			mockSetup: func() {
				mockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(product, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:  "not_found",
			actor: models.Identity{ID: "seller-1"},
			mockSetup: func() {
				mockRepo.EXPECT().Get(gomock.Any(), "prod-1").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			err := service.DeleteProduct(context.Background(), "prod-1", tc.actor)

			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
