package repositories

import (
	"context"
	"errors"
	"fmt"

	"auction-house/apperrors"
	"auction-house/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BidRepository is the persistence boundary for bids.
type BidRepository interface {
	Create(ctx context.Context, bid *models.Bid) error
	Get(ctx context.Context, id string) (*models.Bid, error)
	Delete(ctx context.Context, id string) error
}

type bidRepository struct {
	db *pgxpool.Pool
}

func NewBidRepository(db *pgxpool.Pool) BidRepository {
	return &bidRepository{db: db}
}

func (r *bidRepository) Create(ctx context.Context, bid *models.Bid) error {
	query := `
		INSERT INTO bids (id, product_id, bidder_id, price, date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, bid.ID, bid.ProductID, bid.BidderID, bid.Price, bid.Date)
	if err != nil {
		return fmt.Errorf("create bid on product %s: %w", bid.ProductID, err)
	}
	return nil
}

func (r *bidRepository) Get(ctx context.Context, id string) (*models.Bid, error) {
	query := `SELECT id, product_id, bidder_id, price, date FROM bids WHERE id = $1`

	var b models.Bid
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.ProductID, &b.BidderID, &b.Price, &b.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("bid %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get bid %s: %w", id, err)
	}
	return &b, nil
}

func (r *bidRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bid %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bid %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
