// Package chat assembles the conversation view for the chat screen. A
// conversation is not a stored entity: the server derives the list from the
// user's messages, and this package reconciles it with an optional direct
// target — a (product, counterparty) pair handed over by a referring screen
// before any message exists for it.
package chat

import (
	"context"
	"errors"
	"strings"

	"joytrade/internal/client/models"
	"joytrade/internal/logging"
)

var (
	// ErrEmptyMessage rejects a send with nothing but whitespace. No API
	// call is made on this path.
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrNoRecipient rejects a send with no selected conversation or no
	// resolved counterparty.
	ErrNoRecipient = errors.New("no conversation selected")
)

// API is the slice of the marketplace client the chat view depends on.
type API interface {
	Conversations(ctx context.Context) ([]models.Conversation, error)
	Messages(ctx context.Context, productID int) ([]models.Message, error)
	SendMessage(ctx context.Context, productID int, receiver, text string) error
	Product(ctx context.Context, id int) (models.Product, error)
}

// DirectTarget aims the chat screen at a specific product and counterparty.
type DirectTarget struct {
	ProductID int
	Receiver  string
}

// ProductSummary is the header metadata shown above a selected conversation.
type ProductSummary struct {
	Name  string
	Image string
	Price float64
}

// View is the chat screen's state. Conversation-list and message fetch
// failures follow a silent-degradation policy: the prior state stays
// untouched, the failure is logged and recorded in LoadErr, and no
// user-facing alert is raised. Send failures are the exception — they are
// returned to the caller for a synchronous alert.
type View struct {
	api    API
	log    logging.Logger
	direct *DirectTarget

	// User is the authenticated account, used to attribute message ownership
	// when rendering.
	User models.User

	Conversations []models.Conversation
	SelectedID    int // product id of the selected conversation, 0 = none
	Receiver      string
	Summary       *ProductSummary
	Messages      []models.Message

	// LoadErr holds the most recent silently-degraded failure, nil after a
	// clean load. Kept observable so the policy is testable.
	LoadErr error
}

// NewView builds a chat view for the given user. direct may be nil.
func NewView(api API, log logging.Logger, user models.User, direct *DirectTarget) *View {
	return &View{api: api, log: log, User: user, direct: direct}
}

// Load fetches the server's conversation list and reconciles it with the
// direct target.
//
// When the target already appears in the list (same product and
// counterparty), the fetched list is used unmodified — the real conversation
// with real history takes precedence. Otherwise the product is fetched and
// one provisional entry is prepended, so the target is selectable before any
// message has been sent. Server order is preserved behind the synthesized
// entry.
func (v *View) Load(ctx context.Context) {
	list, err := v.api.Conversations(ctx)
	if err != nil {
		v.log.Warn(ctx, "conversation list fetch failed", "err", err)
		v.LoadErr = err
		return
	}

	if v.direct != nil && !containsTarget(list, v.direct) {
		p, err := v.api.Product(ctx, v.direct.ProductID)
		if err != nil {
			v.log.Warn(ctx, "direct target product fetch failed",
				"product_id", v.direct.ProductID, "err", err)
			v.LoadErr = err
			return
		}
		entry := models.Conversation{
			ProductID:    v.direct.ProductID,
			ProductName:  p.Name,
			OtherUser:    v.direct.Receiver,
			ProductImage: p.Image,
			ProductPrice: p.Price,
		}
		list = append([]models.Conversation{entry}, list...)
	}

	v.Conversations = list
	v.LoadErr = nil
}

// Select makes the conversation for productID current and loads its
// messages (server canonical order, oldest first). Conversation metadata is
// resolved from the assembled list; when the entry is missing — a direct
// target racing the list, or selection by bare id — the product is
// re-fetched as a fallback.
func (v *View) Select(ctx context.Context, productID int) {
	msgs, err := v.api.Messages(ctx, productID)
	if err != nil {
		v.log.Warn(ctx, "message fetch failed", "product_id", productID, "err", err)
		v.LoadErr = err
		return
	}

	v.SelectedID = productID
	v.Messages = msgs
	v.LoadErr = nil

	if c, ok := v.conversation(productID); ok {
		v.Receiver = c.OtherUser
		v.Summary = &ProductSummary{Name: c.ProductName, Image: c.ProductImage, Price: c.ProductPrice}
		return
	}

	if v.direct != nil && v.direct.ProductID == productID {
		v.Receiver = v.direct.Receiver
	}
	p, err := v.api.Product(ctx, productID)
	if err != nil {
		v.log.Warn(ctx, "conversation metadata fallback failed",
			"product_id", productID, "err", err)
		v.LoadErr = err
		return
	}
	v.Summary = &ProductSummary{Name: p.Name, Image: p.Image, Price: p.Price}
}

// Send delivers text to the current counterparty. Preconditions: non-empty
// trimmed text, a resolved counterparty, and a selected conversation —
// violating any of them performs no API call. After a successful send the
// message list is re-fetched in full; there is no optimistic append, the
// displayed list is always the server's canonical order.
func (v *View) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}
	if v.SelectedID == 0 || v.Receiver == "" {
		return ErrNoRecipient
	}

	if err := v.api.SendMessage(ctx, v.SelectedID, v.Receiver, text); err != nil {
		return err
	}

	msgs, err := v.api.Messages(ctx, v.SelectedID)
	if err != nil {
		// The send itself succeeded; only the refresh degraded.
		v.log.Warn(ctx, "message refresh failed", "product_id", v.SelectedID, "err", err)
		v.LoadErr = err
		return nil
	}
	v.Messages = msgs
	return nil
}

func (v *View) conversation(productID int) (models.Conversation, bool) {
	for _, c := range v.Conversations {
		if c.ProductID == productID {
			return c, true
		}
	}
	return models.Conversation{}, false
}

func containsTarget(list []models.Conversation, t *DirectTarget) bool {
	for _, c := range list {
		if c.Matches(t.ProductID, t.Receiver) {
			return true
		}
	}
	return false
}
