// Package nav models the client's navigation state: one variant per screen,
// each carrying exactly the parameters that screen needs, so invalid
// combinations cannot be represented. There is no terminal screen; the UI
// loops until the user quits.
package nav

import (
	"context"

	"joytrade/internal/client/models"
)

// Screen is the sealed set of navigation states.
type Screen interface {
	Name() string
	screen()
}

type base struct{}

func (base) screen() {}

// Home is the catalog screen and the initial state.
type Home struct{ base }

// Product shows the listing with the given id.
type Product struct {
	base
	ID int
}

type Favorites struct{ base }

type Orders struct{ base }

type Cart struct{ base }

type Login struct{ base }

type Register struct{ base }

// Chat opens the conversation list with no preselected target.
type Chat struct{ base }

// ChatDirect opens chat aimed at a (product, counterparty) pair supplied by
// a referring screen, before any message may exist for that pair.
type ChatDirect struct {
	base
	ProductID int
	Receiver  models.User
}

// Post is the new-listing form.
type Post struct{ base }

type Profile struct{ base }

// Edit is the listing-edit form.
type Edit struct {
	base
	ProductID int
}

// NotFound is the fallback for an unrecognized destination.
type NotFound struct {
	base
	Requested string
}

func (Home) Name() string       { return "home" }
func (Product) Name() string    { return "product" }
func (Favorites) Name() string  { return "favorites" }
func (Orders) Name() string     { return "orders" }
func (Cart) Name() string       { return "cart" }
func (Login) Name() string      { return "login" }
func (Register) Name() string   { return "register" }
func (Chat) Name() string       { return "chat" }
func (ChatDirect) Name() string { return "chat" }
func (Post) Name() string       { return "post" }
func (Profile) Name() string    { return "profile" }
func (Edit) Name() string       { return "edit" }
func (NotFound) Name() string   { return "not-found" }

// Gated reports whether the screen requires an authenticated user. The
// router performs no centralized guard; gated screens render a login prompt
// themselves when entered logged out.
func Gated(s Screen) bool {
	switch s.(type) {
	case Post, Profile, Chat, ChatDirect, Edit:
		return true
	}
	return false
}

// Router holds the active screen and scopes a context to its lifetime.
// Navigating away cancels the previous screen's context, so responses of
// in-flight fetches from an exited screen are discarded instead of applied.
type Router struct {
	parent  context.Context
	current Screen
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewRouter starts at Home.
func NewRouter(parent context.Context) *Router {
	r := &Router{parent: parent}
	r.Go(Home{})
	return r
}

// Go transitions to the next screen, retiring the context of the current one.
func (r *Router) Go(next Screen) {
	if r.cancel != nil {
		r.cancel()
	}
	r.ctx, r.cancel = context.WithCancel(r.parent)
	r.current = next
}

// Current returns the active screen.
func (r *Router) Current() Screen {
	return r.current
}

// Context is canceled as soon as the active screen is left.
func (r *Router) Context() context.Context {
	return r.ctx
}
