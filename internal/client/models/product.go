package models

import "time"

// ProductStatus is the lifecycle state of a listing.
type ProductStatus string

const (
	StatusAvailable ProductStatus = "available"
	StatusSold      ProductStatus = "sold"
	StatusInactive  ProductStatus = "inactive"
)

// Product is a marketplace listing. Image is either a URL, an inline
// data-URI, or a single emoji placeholder chosen at posting time.
type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Image       string        `json:"image"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	TradeMethod string        `json:"trade_method"`
	Status      ProductStatus `json:"status"`
	Seller      User          `json:"seller"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewProduct is the creation payload for POST /products/create/.
type NewProduct struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	TradeMethod string  `json:"trade_method"`
}

// ProductEdit carries the editable fields of an existing listing. The
// edit endpoint takes a multipart form, so values travel as form fields
// rather than JSON.
type ProductEdit struct {
	Name        string
	Description string
	Price       float64
	Category    string
	TradeMethod string
	Status      ProductStatus
}
