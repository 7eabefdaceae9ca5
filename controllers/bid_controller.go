package controllers

import (
	"context"
	"net/http"

	"auction-house/middleware"
	"auction-house/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type BidServiceInterface interface {
	PlaceBid(ctx context.Context, productID string, req models.PlaceBidRequest, actor models.Identity) (*models.Bid, error)
	DeleteBid(ctx context.Context, bidID string, actor models.Identity) error
}

type BidController struct {
	service BidServiceInterface
	cache   *redis.Client
}

func NewBidController(service BidServiceInterface, cache *redis.Client) *BidController {
	return &BidController{service: service, cache: cache}
}

// @Summary Place a bid
// @Description Place a bid on a product; the bid date is assigned server-side
// @Tags Bids
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param bid body models.PlaceBidRequest true "Bid price"
// @Success 201 {object} models.Bid
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/products/{productId}/bids [post]
func (ctrl *BidController) PlaceBid(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bid, err := ctrl.service.PlaceBid(c.Request.Context(), c.Param("productId"), req, identity)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache(ctrl.cache)
	utils.Info("bid placed", map[string]any{
		"bid_id":     bid.ID,
		"product_id": bid.ProductID,
		"bidder_id":  identity.ID,
		"price":      bid.Price,
	})
	c.JSON(http.StatusCreated, bid)
}

// @Summary Delete a bid
// @Description Delete a bid; bidder or admin only
// @Tags Bids
// @Param bidId path string true "Bid ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/bids/{bidId} [delete]
func (ctrl *BidController) DeleteBid(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	bidID := c.Param("bidId")
	if err := ctrl.service.DeleteBid(c.Request.Context(), bidID, identity); err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache(ctrl.cache)
	utils.Info("bid deleted", map[string]any{
		"bid_id":   bidID,
		"actor_id": identity.ID,
	})
	c.Status(http.StatusNoContent)
}
