package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-house/apperrors"
	"auction-house/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository is the persistence boundary for user accounts and the
// per-user activity view.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetWithActivity(ctx context.Context, id string) (*models.UserView, error)
}

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, password, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.Password, user.IsAdmin, now, now,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, username, email, password, is_admin, created_at, updated_at FROM users WHERE email = $1`

	var u models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, username, email, password, is_admin, created_at, updated_at FROM users WHERE id = $1`

	var u models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.Password, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &u, nil
}

// GetWithActivity returns the user with the products they sell and the
// bids they have placed, each bid carrying its product.
func (r *userRepository) GetWithActivity(ctx context.Context, id string) (*models.UserView, error) {
	user, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &models.UserView{User: *user}

	productQuery := `
		SELECT id, name, description, picture_url, category, original_price, end_date, seller_id, created_at, updated_at
		FROM products WHERE seller_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, productQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get products for user %s: %w", id, err)
	}
	defer rows.Close()

	view.Products = []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.PictureURL, &p.Category, &p.OriginalPrice,
			&p.EndDate, &p.SellerID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		view.Products = append(view.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get products for user %s: %w", id, err)
	}

	bidQuery := `
		SELECT b.id, b.product_id, b.bidder_id, b.price, b.date,
		       p.id, p.name, p.description, p.picture_url, p.category, p.original_price,
		       p.end_date, p.seller_id, p.created_at, p.updated_at
		FROM bids b
		JOIN products p ON p.id = b.product_id
		WHERE b.bidder_id = $1
		ORDER BY b.date
	`
	bidRows, err := r.db.Query(ctx, bidQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get bids for user %s: %w", id, err)
	}
	defer bidRows.Close()

	view.Bids = []models.BidWithProduct{}
	for bidRows.Next() {
		var b models.BidWithProduct
		var p models.Product
		if err := bidRows.Scan(
			&b.ID, &b.ProductID, &b.BidderID, &b.Price, &b.Date,
			&p.ID, &p.Name, &p.Description, &p.PictureURL, &p.Category, &p.OriginalPrice,
			&p.EndDate, &p.SellerID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		b.Product = &p
		view.Bids = append(view.Bids, b)
	}
	if err := bidRows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for user %s: %w", id, err)
	}

	return view, nil
}
