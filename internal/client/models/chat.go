package models

import "time"

// Message is a single chat message tied to a product. Immutable once sent;
// the server orders message lists chronologically, oldest first.
type Message struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Text      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is a derived grouping of messages by (product, counterparty).
// It is not a stored entity: the server synthesizes the list from the user's
// sent and received messages, and the chat screen may prepend one provisional
// entry for a direct-chat target that has no messages yet.
type Conversation struct {
	ProductID    int     `json:"productId"`
	ProductName  string  `json:"productName"`
	OtherUser    string  `json:"otherUser"`
	ProductImage string  `json:"productImage"`
	ProductPrice float64 `json:"productPrice"`
}

// Matches reports whether the conversation is the one identified by the
// given product and counterparty.
func (c Conversation) Matches(productID int, otherUser string) bool {
	return c.ProductID == productID && c.OtherUser == otherUser
}
