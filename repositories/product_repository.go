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

// ProductRepository is the persistence boundary for products and their
// aggregated read views.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetAll(ctx context.Context) ([]models.ProductView, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	GetDetail(ctx context.Context, id string) (*models.ProductView, error)
	Update(ctx context.Context, product *models.Product) error
	DeleteWithBids(ctx context.Context, id string) error
}

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, description, picture_url, category, original_price, end_date, seller_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.PictureURL,
		product.Category, product.OriginalPrice, product.EndDate, product.SellerID, now, now,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *productRepository) GetAll(ctx context.Context) ([]models.ProductView, error) {
	query := `
		SELECT p.id, p.name, p.description, p.picture_url, p.category, p.original_price,
		       p.end_date, p.seller_id, p.created_at, p.updated_at,
		       u.id, u.username, u.email, u.is_admin, u.created_at, u.updated_at
		FROM products p
		JOIN users u ON u.id = p.seller_id
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.ProductView{}
	for rows.Next() {
		var v models.ProductView
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Description, &v.PictureURL, &v.Category, &v.OriginalPrice,
			&v.EndDate, &v.SellerID, &v.CreatedAt, &v.UpdatedAt,
			&v.Seller.ID, &v.Seller.Username, &v.Seller.Email, &v.Seller.IsAdmin,
			&v.Seller.CreatedAt, &v.Seller.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		v.Bids = []models.BidView{}
		products = append(products, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if err := r.attachBids(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// attachBids loads the bid history in one query and groups it per product,
// preserving date order.
func (r *productRepository) attachBids(ctx context.Context, products []models.ProductView) error {
	if len(products) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, product_id, bidder_id, price, date FROM bids ORDER BY date`)
	if err != nil {
		return fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()

	byProduct := make(map[string][]models.BidView)
	for rows.Next() {
		var b models.BidView
		if err := rows.Scan(&b.ID, &b.ProductID, &b.BidderID, &b.Price, &b.Date); err != nil {
			return fmt.Errorf("scan bid: %w", err)
		}
		byProduct[b.ProductID] = append(byProduct[b.ProductID], b)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list bids: %w", err)
	}

	for i := range products {
		if bids, ok := byProduct[products[i].ID]; ok {
			products[i].Bids = bids
		}
	}
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT id, name, description, picture_url, category, original_price, end_date, seller_id, created_at, updated_at
		FROM products WHERE id = $1
	`
	var p models.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.PictureURL, &p.Category, &p.OriginalPrice,
		&p.EndDate, &p.SellerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &p, nil
}

func (r *productRepository) GetDetail(ctx context.Context, id string) (*models.ProductView, error) {
	query := `
		SELECT p.id, p.name, p.description, p.picture_url, p.category, p.original_price,
		       p.end_date, p.seller_id, p.created_at, p.updated_at,
		       u.id, u.username, u.email, u.is_admin, u.created_at, u.updated_at
		FROM products p
		JOIN users u ON u.id = p.seller_id
		WHERE p.id = $1
	`
	var v models.ProductView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Description, &v.PictureURL, &v.Category, &v.OriginalPrice,
		&v.EndDate, &v.SellerID, &v.CreatedAt, &v.UpdatedAt,
		&v.Seller.ID, &v.Seller.Username, &v.Seller.Email, &v.Seller.IsAdmin,
		&v.Seller.CreatedAt, &v.Seller.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}

	bidQuery := `
		SELECT b.id, b.product_id, b.bidder_id, b.price, b.date,
		       u.id, u.username, u.email, u.is_admin, u.created_at, u.updated_at
		FROM bids b
		JOIN users u ON u.id = b.bidder_id
		WHERE b.product_id = $1
		ORDER BY b.date
	`
	rows, err := r.db.Query(ctx, bidQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get bids for product %s: %w", id, err)
	}
	defer rows.Close()

	v.Bids = []models.BidView{}
	for rows.Next() {
		var b models.BidView
		var bidder models.User
		if err := rows.Scan(
			&b.ID, &b.ProductID, &b.BidderID, &b.Price, &b.Date,
			&bidder.ID, &bidder.Username, &bidder.Email, &bidder.IsAdmin,
			&bidder.CreatedAt, &bidder.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		b.Bidder = &bidder
		v.Bids = append(v.Bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids for product %s: %w", id, err)
	}

	return &v, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products SET name = $1, description = $2, picture_url = $3, category = $4,
		       original_price = $5, end_date = $6, updated_at = $7
		WHERE id = $8
	`
	tag, err := r.db.Exec(ctx, query,
		product.Name, product.Description, product.PictureURL, product.Category,
		product.OriginalPrice, product.EndDate, time.Now(), product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", product.ID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteWithBids removes a product and every bid referencing it in a
// single transaction so a failure cannot leave orphaned bids.
func (r *productRepository) DeleteWithBids(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bids WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete bids for product %s: %w", id, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
