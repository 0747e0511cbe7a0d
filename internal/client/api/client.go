// Package api implements the client for the JoyTrade marketplace REST
// service. All durable state and business rules live server-side; this
// package only issues authenticated requests, decodes responses into
// models, and normalizes error bodies into a single human-readable value.
package api

import (
	"context"

	"joytrade/internal/client/models"
)

// Client is the full operation surface of the marketplace service.
//
// Contract:
//   - Every method honors context cancellation and deadlines.
//   - Failed calls return either an *Error (non-2xx with a normalized
//     message) or a wrapped transport error. No call is retried.
//   - SetToken/ClearToken switch the bearer credential used by all
//     subsequent requests; they are driven by the session layer.
type Client interface {
	SetToken(token string)
	ClearToken()

	// Auth.
	Register(ctx context.Context, username, email, password string) (string, models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (models.User, error)
	UploadAvatar(ctx context.Context, filename string, data []byte) (models.User, error)
	ToggleVacation(ctx context.Context) (bool, error)

	// Catalog.
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id int) (models.Product, error)
	CreateProduct(ctx context.Context, p models.NewProduct) (models.Product, error)
	UpdateProductStatus(ctx context.Context, id int, status models.ProductStatus) (models.Product, error)
	EditProduct(ctx context.Context, id int, edit models.ProductEdit, imageName string, imageData []byte) error
	MyProducts(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	UploadProductImage(ctx context.Context, filename string, data []byte) (string, error)
	DeleteProduct(ctx context.Context, id int) error

	// Favorites.
	ToggleFavorite(ctx context.Context, productID int) (bool, error)
	Favorites(ctx context.Context) ([]models.Product, error)

	// Orders and cart.
	PlaceOrder(ctx context.Context, productID int) error
	Orders(ctx context.Context) ([]models.Order, error)
	Cart(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, productID int) error
	RemoveFromCart(ctx context.Context, productID int) error
	PlaceCartOrder(ctx context.Context) ([]string, error)

	// Messaging.
	SendMessage(ctx context.Context, productID int, receiver, text string) error
	Messages(ctx context.Context, productID int) ([]models.Message, error)
	Conversations(ctx context.Context) ([]models.Conversation, error)
}
