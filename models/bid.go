package models

import "time"

type Bid struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	BidderID  string    `json:"bidderId"`
	Price     float64   `json:"price"`
	Date      time.Time `json:"date"`
}

type BidView struct {
	Bid
	Bidder *User `json:"bidder,omitempty"`
}

type BidWithProduct struct {
	Bid
	Product *Product `json:"product,omitempty"`
}
