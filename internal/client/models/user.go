// Package models defines the data transfer objects exchanged with the
// JoyTrade marketplace API. All entities are server-owned; the client treats
// them as read-mostly snapshots and never persists them beyond in-memory
// view state. JSON tags follow the service's wire contract exactly.
package models

// User is the marketplace account as returned by /auth/me/ and embedded as
// the seller of a product. Vacation suppresses the user's listings from
// catalog queries.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Vacation bool   `json:"vacation"`
}
