package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"joytrade/internal/client/models"
	"joytrade/internal/client/nav"
)

// productScreen shows one listing. The details and (for a logged-in
// non-owner) the favorite membership are fetched concurrently and joined
// before anything renders.
func (a *App) productScreen(ctx context.Context, id int) (nav.Screen, error) {
	a.info("Loading...")

	var (
		product  models.Product
		favs     []models.Product
		favorite bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = a.api.Product(gctx, id)
		return err
	})
	if a.session.LoggedIn() {
		g.Go(func() error {
			var err error
			favs, err = a.api.Favorites(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		a.alert("Fail to load: " + err.Error())
		return nav.Home{}, nil
	}
	for _, f := range favs {
		if f.ID == id {
			favorite = true
			break
		}
	}

	user := a.session.CurrentUser()
	owner := user != nil && user.ID == product.Seller.ID

	render := func() {
		a.title(product.Name)
		fmt.Fprintln(a.out, product.Description)
		fmt.Fprintln(a.out, headerStyle.Render(money(product.Price)))
		fmt.Fprintf(a.out, "Delivery Method: %s\n", product.TradeMethod)
		fmt.Fprintf(a.out, "Seller: %s\n", product.Seller.Username)
		fmt.Fprintf(a.out, "Published on: %s\n", when(product.CreatedAt))
		fmt.Fprintf(a.out, "Status: %s\n", product.Status)
		fmt.Fprintf(a.out, "Category: %s\n", product.Category)
		if user != nil && !owner {
			if favorite {
				a.info("In your favorites.")
			}
		}
		if user == nil {
			a.alert("Please login to favorite, chat or buy.")
		}
	}
	render()

	for {
		cmd, _, err := a.prompt("product")
		if err != nil {
			return nil, err
		}
		switch cmd {
		case "":
			continue
		case "help":
			switch {
			case user == nil:
				a.info("Commands: show, back, login, quit")
			case owner:
				a.info("Commands: show, status available|sold|inactive, back, home, quit")
			default:
				a.info("Commands: show, fav, buy, tocart, chat, back, home, quit")
			}
		case "show":
			render()
		case "back":
			return nav.Home{}, nil
		case "status":
			if !owner {
				a.alert("Only the seller can update the status.")
				continue
			}
			a.updateStatus(ctx, &product)
		case "fav":
			if user == nil || owner {
				a.alert("Favorites are for logged-in buyers.")
				continue
			}
			state, err := a.api.ToggleFavorite(ctx, product.ID)
			if err != nil {
				a.alert("Operation failed: " + err.Error())
				continue
			}
			favorite = state
			if favorite {
				fmt.Fprintln(a.out, "Added to favorites.")
			} else {
				fmt.Fprintln(a.out, "Removed from favorites.")
			}
		case "buy":
			if user == nil || owner {
				a.alert("Login as a buyer to place an order.")
				continue
			}
			ok, err := confirm(a.reader, "Buy "+product.Name+" for "+money(product.Price)+"?", a.out)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if err := a.api.PlaceOrder(ctx, product.ID); err != nil {
				a.alert("Order placement failed: " + err.Error())
				continue
			}
			fmt.Fprintln(a.out, "Order placed!")
		case "tocart":
			if user == nil || owner {
				a.alert("Login as a buyer to use the cart.")
				continue
			}
			if err := a.api.AddToCart(ctx, product.ID); err != nil {
				a.alert("Add to cart failed: " + err.Error())
				continue
			}
			fmt.Fprintln(a.out, "Added to cart.")
		case "chat":
			// On this screen "chat" starts a direct chat with the seller,
			// shadowing the global chat-list command.
			if user == nil {
				a.alert("Please login to chat with the seller.")
				continue
			}
			if owner {
				return nav.Chat{}, nil
			}
			return nav.ChatDirect{ProductID: product.ID, Receiver: product.Seller}, nil
		default:
			if next, err, ok := a.handleCommon(ctx, cmd); ok {
				return next, err
			}
			a.alert("Unknown command: " + cmd)
		}
	}
}

// updateStatus runs the seller's status flow and patches the local copy on
// success, as the original detail page does.
func (a *App) updateStatus(ctx context.Context, product *models.Product) {
	s, err := getSimpleText(a.reader, "New status (available/sold/inactive)", a.out)
	if err != nil {
		return
	}
	status := models.ProductStatus(s)
	switch status {
	case models.StatusAvailable, models.StatusSold, models.StatusInactive:
	default:
		a.alert("Status must be one of available, sold, inactive.")
		return
	}
	updated, err := a.api.UpdateProductStatus(ctx, product.ID, status)
	if err != nil {
		a.alert("Update failed: " + err.Error())
		return
	}
	product.Status = updated.Status
	fmt.Fprintf(a.out, "Status: %s\n", product.Status)
}
