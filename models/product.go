package models

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PictureURL    string    `json:"pictureUrl"`
	Category      string    `json:"category"`
	OriginalPrice float64   `json:"originalPrice"`
	EndDate       time.Time `json:"endDate"`
	SellerID      string    `json:"sellerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductView is a product enriched with its seller and bid history,
// bids ordered by date. Bidder identities are attached on detail reads
// and omitted on list reads.
type ProductView struct {
	Product
	Seller User      `json:"seller"`
	Bids   []BidView `json:"bids"`
}
