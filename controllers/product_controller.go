package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"auction-house/middleware"
	"auction-house/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const productListCacheKey = "products_list"

type ProductServiceInterface interface {
	GetAllProducts(ctx context.Context) ([]models.ProductView, error)
	GetProduct(ctx context.Context, id string) (*models.ProductView, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest, actor models.Identity) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest, actor models.Identity) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string, actor models.Identity) error
}

type ProductController struct {
	service ProductServiceInterface
	cache   *redis.Client
}

func NewProductController(service ProductServiceInterface, cache *redis.Client) *ProductController {
	return &ProductController{service: service, cache: cache}
}

// invalidateProductCache drops the cached product list after any product
// or bid mutation. A nil client means caching is disabled.
func invalidateProductCache(cache *redis.Client) {
	if cache == nil {
		return
	}
	cache.Del(context.Background(), productListCacheKey)
}

// @Summary List products
// @Description Get all products with their sellers and bid histories
// @Tags Products
// @Produce json
// @Success 200 {array} models.ProductView
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if ctrl.cache != nil {
		cached, err := ctrl.cache.Get(ctx, productListCacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.service.GetAllProducts(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	if ctrl.cache != nil {
		if jsonData, err := json.Marshal(products); err == nil {
			ctrl.cache.Set(ctx, productListCacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Get a product
// @Description Get one product with its seller and bids, bidders included
// @Tags Products
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ProductView
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products/{productId} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	product, err := ctrl.service.GetProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Create a product
// @Description Create a product listing; the caller becomes the seller
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product fields"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.service.CreateProduct(c.Request.Context(), req, identity)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache(ctrl.cache)
	utils.Info("product created", map[string]any{
		"product_id": product.ID,
		"seller_id":  identity.ID,
	})
	c.JSON(http.StatusCreated, product)
}

// @Summary Update a product
// @Description Update provided fields; seller or admin only. Bookkeeping timestamps are stripped from the response.
// @Tags Products
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.UpdatedProduct
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/products/{productId} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.service.UpdateProduct(c.Request.Context(), c.Param("productId"), req, identity)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache(ctrl.cache)
	c.JSON(http.StatusOK, models.UpdatedProduct{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		PictureURL:    product.PictureURL,
		Category:      product.Category,
		OriginalPrice: product.OriginalPrice,
		EndDate:       product.EndDate,
		SellerID:      product.SellerID,
	})
}

// @Summary Delete a product
// @Description Delete a product and all its bids; seller or admin only
// @Tags Products
// @Param productId path string true "Product ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/products/{productId} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	productID := c.Param("productId")
	if err := ctrl.service.DeleteProduct(c.Request.Context(), productID, identity); err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache(ctrl.cache)
	utils.Info("product deleted", map[string]any{
		"product_id": productID,
		"actor_id":   identity.ID,
	})
	c.Status(http.StatusNoContent)
}
