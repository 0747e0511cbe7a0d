package cli

import (
	"context"
	"fmt"
	"strings"

	"joytrade/internal/client/models"
	"joytrade/internal/client/nav"
)

// cartScreen lists pending purchases. Removal patches the local slice on
// success; checkout flushes the whole cart into orders and re-fetches.
func (a *App) cartScreen(ctx context.Context) (nav.Screen, error) {
	a.title("My Cart")
	a.info("Loading cart...")

	cart, err := a.api.Cart(ctx)
	if err != nil {
		a.alert("Failed to load cart: " + err.Error())
	}

	render := func() {
		if len(cart) == 0 {
			a.empty("Your cart is empty.")
			return
		}
		for _, item := range cart {
			fmt.Fprintf(a.out, "  [%d] %s — %s\n", item.Product.ID, item.Product.Name, money(item.Product.Price))
		}
	}
	if err == nil {
		render()
	}

	for {
		cmd, args, err := a.prompt("cart")
		if err != nil {
			return nil, err
		}
		switch cmd {
		case "":
			continue
		case "help":
			a.info("Commands: list, open <id>, remove <id>, checkout, back, home, quit")
		case "list":
			render()
		case "open":
			id, ok := parseID(args)
			if !ok {
				a.alert("Usage: open <product id>")
				continue
			}
			return nav.Product{ID: id}, nil
		case "remove":
			id, ok := parseID(args)
			if !ok {
				a.alert("Usage: remove <product id>")
				continue
			}
			yes, err := confirm(a.reader, "Remove this item from cart?", a.out)
			if err != nil {
				return nil, err
			}
			if !yes {
				continue
			}
			if err := a.api.RemoveFromCart(ctx, id); err != nil {
				a.alert("Failed to remove: " + err.Error())
				continue
			}
			kept := make([]models.CartItem, 0, len(cart))
			for _, item := range cart {
				if item.Product.ID != id {
					kept = append(kept, item)
				}
			}
			cart = kept
			render()
		case "checkout":
			yes, err := confirm(a.reader, "Place order for all items in cart?", a.out)
			if err != nil {
				return nil, err
			}
			if !yes {
				continue
			}
			ordered, err := a.api.PlaceCartOrder(ctx)
			if err != nil {
				a.alert("Failed to place order: " + err.Error())
				continue
			}
			fmt.Fprintf(a.out, "Order placed for: %s\n", strings.Join(ordered, ", "))
			cart, err = a.api.Cart(ctx)
			if err != nil {
				a.alert("Failed to load cart: " + err.Error())
				continue
			}
			render()
		case "back":
			return nav.Home{}, nil
		default:
			if next, err, ok := a.handleCommon(ctx, cmd); ok {
				return next, err
			}
			a.alert("Unknown command: " + cmd)
		}
	}
}
