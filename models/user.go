package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	IsAdmin   bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	ID      string
	IsAdmin bool
}

// UserView is a user together with the products they sell and the bids
// they have placed, each bid carrying the product it targets.
type UserView struct {
	User
	Products []Product        `json:"products"`
	Bids     []BidWithProduct `json:"bids"`
}
