package services

import (
	"context"
	"fmt"
	"time"

	"auction-house/apperrors"
	"auction-house/models"
	"auction-house/repositories"
	"auction-house/utils"
)

// ProductService owns the product lifecycle: public reads, seller-scoped
// creation, and owner-or-admin mutation with cascade delete.
type ProductService struct {
	products repositories.ProductRepository
}

func NewProductService(products repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.ProductView, error) {
	return s.products.GetAll(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.ProductView, error) {
	return s.products.GetDetail(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest, actor models.Identity) (*models.Product, error) {
	invalid := []string{}
	if req.Name == "" {
		invalid = append(invalid, "name")
	}
	if req.Description == "" {
		invalid = append(invalid, "description")
	}
	if req.PictureURL == "" {
		invalid = append(invalid, "pictureUrl")
	}
	if req.Category == "" {
		invalid = append(invalid, "category")
	}
	if req.OriginalPrice <= 0 {
		invalid = append(invalid, "originalPrice")
	}
	if req.EndDate.IsZero() || req.EndDate.Before(time.Now()) {
		invalid = append(invalid, "endDate")
	}
	if len(invalid) > 0 {
		return nil, apperrors.NewValidationError(invalid...)
	}

	product := &models.Product{
		ID:            utils.GenerateID(),
		Name:          req.Name,
		Description:   req.Description,
		PictureURL:    req.PictureURL,
		Category:      req.Category,
		OriginalPrice: req.OriginalPrice,
		EndDate:       req.EndDate,
		SellerID:      actor.ID,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("service: failed to create product for seller %s: %w", actor.ID, err)
	}
	return product, nil
}

// UpdateProduct applies only the provided fields, re-validating them with
// the creation rules. The seller assignment is never touched.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest, actor models.Identity) (*models.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !OwnerOrAdmin(product.SellerID, actor) {
		return nil, fmt.Errorf("update product %s: %w", id, apperrors.ErrForbidden)
	}

	invalid := []string{}
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.PictureURL != "" {
		product.PictureURL = req.PictureURL
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.OriginalPrice != 0 {
		if req.OriginalPrice < 0 {
			invalid = append(invalid, "originalPrice")
		} else {
			product.OriginalPrice = req.OriginalPrice
		}
	}
	if !req.EndDate.IsZero() {
		if req.EndDate.Before(time.Now()) {
			invalid = append(invalid, "endDate")
		} else {
			product.EndDate = req.EndDate
		}
	}
	if len(invalid) > 0 {
		return nil, apperrors.NewValidationError(invalid...)
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("service: failed to update product %s: %w", id, err)
	}
	return product, nil
}

// DeleteProduct removes the product and all bids referencing it. The
// cascade runs inside the repository transaction so no orphaned bid can
// survive the product.
func (s *ProductService) DeleteProduct(ctx context.Context, id string, actor models.Identity) error {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		return err
	}

	if !OwnerOrAdmin(product.SellerID, actor) {
		return fmt.Errorf("delete product %s: %w", id, apperrors.ErrForbidden)
	}

	return s.products.DeleteWithBids(ctx, id)
}
