package cli

import (
	"context"
	"fmt"

	"joytrade/internal/client/nav"
)

// ordersScreen lists completed purchases, newest metadata straight from the
// server; orders are immutable here.
func (a *App) ordersScreen(ctx context.Context) (nav.Screen, error) {
	a.title("My Orders")
	a.info("Loading orders...")

	orders, err := a.api.Orders(ctx)
	if err != nil {
		a.alert("Failed to load orders: " + err.Error())
	} else if len(orders) == 0 {
		a.empty("No orders yet.")
	} else {
		for _, o := range orders {
			fmt.Fprintf(a.out, "  [%d] %s — %s  %s\n",
				o.Product.ID, o.Product.Name, money(o.Product.Price), faintStyle.Render(when(o.CreatedAt)))
		}
	}

	for {
		cmd, args, err := a.prompt("orders")
		if err != nil {
			return nil, err
		}
		switch cmd {
		case "":
			continue
		case "help":
			a.info("Commands: open <id>, back, home, favorites, cart, chat, profile, quit")
		case "open":
			id, ok := parseID(args)
			if !ok {
				a.alert("Usage: open <product id>")
				continue
			}
			return nav.Product{ID: id}, nil
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
