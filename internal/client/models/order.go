package models

import "time"

// Order records a completed purchase. Immutable from the client's
// perspective once created.
type Order struct {
	ID        int       `json:"id"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItem is a pending-purchase relation. Items are removed individually
// or flushed in bulk into orders at checkout.
type CartItem struct {
	ID      int     `json:"id"`
	Product Product `json:"product"`
}
