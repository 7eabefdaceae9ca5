package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateProductRequest is bound loosely; field-level validation happens in
// the service so that all offending fields are reported at once.
type CreateProductRequest struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PictureURL    string    `json:"pictureUrl"`
	Category      string    `json:"category"`
	OriginalPrice float64   `json:"originalPrice"`
	EndDate       time.Time `json:"endDate"`
}

// UpdateProductRequest carries the fields to change; zero-valued fields
// are treated as not provided and left untouched.
type UpdateProductRequest struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PictureURL    string    `json:"pictureUrl"`
	Category      string    `json:"category"`
	OriginalPrice float64   `json:"originalPrice"`
	EndDate       time.Time `json:"endDate"`
}

type PlaceBidRequest struct {
	Price float64 `json:"price"`
	// Any client-supplied date is ignored; bids are stamped server-side.
	Date time.Time `json:"date"`
}

// UpdatedProduct is the PUT response body: the product without its
// bookkeeping timestamps.
type UpdatedProduct struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PictureURL    string    `json:"pictureUrl"`
	Category      string    `json:"category"`
	OriginalPrice float64   `json:"originalPrice"`
	EndDate       time.Time `json:"endDate"`
	SellerID      string    `json:"sellerId"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
