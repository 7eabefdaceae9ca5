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

// BidService owns bid creation and deletion. A bid may target any live
// product at any positive price; no minimum against the current highest
// bid or the original price is enforced.
type BidService struct {
	bids     repositories.BidRepository
	products repositories.ProductRepository
}

func NewBidService(bids repositories.BidRepository, products repositories.ProductRepository) *BidService {
	return &BidService{bids: bids, products: products}
}

// PlaceBid validates the price, checks the product exists, and records the
// bid. The bid date is always stamped server-side; any client-supplied
// date is discarded.
func (s *BidService) PlaceBid(ctx context.Context, productID string, req models.PlaceBidRequest, actor models.Identity) (*models.Bid, error) {
	if req.Price <= 0 {
		return nil, apperrors.NewValidationError("price")
	}

	if _, err := s.products.Get(ctx, productID); err != nil {
		return nil, err
	}

	bid := &models.Bid{
		ID:        utils.GenerateID(),
		ProductID: productID,
		BidderID:  actor.ID,
		Price:     req.Price,
		Date:      time.Now().UTC(),
	}

	if err := s.bids.Create(ctx, bid); err != nil {
		return nil, fmt.Errorf("service: failed to record bid on product %s by user %s: %w", productID, actor.ID, err)
	}
	return bid, nil
}

// DeleteBid removes a bid. Only its bidder or an admin may do so; deleting
// an id that no longer exists reports not-found.
func (s *BidService) DeleteBid(ctx context.Context, bidID string, actor models.Identity) error {
	bid, err := s.bids.Get(ctx, bidID)
	if err != nil {
		return err
	}

	if !OwnerOrAdmin(bid.BidderID, actor) {
		return fmt.Errorf("delete bid %s: %w", bidID, apperrors.ErrForbidden)
	}

	return s.bids.Delete(ctx, bidID)
}
