package cli

import (
	"context"
	"fmt"

	"joytrade/internal/client/nav"
)

// favoritesScreen lists the user's favorited products.
func (a *App) favoritesScreen(ctx context.Context) (nav.Screen, error) {
	a.title("My Favorites")
	a.info("Loading...")

	favorites, err := a.api.Favorites(ctx)
	if err != nil {
		a.log.Warn(ctx, "favorites fetch failed", "err", err)
		a.alert("Failed to load favorites: " + err.Error())
	} else if len(favorites) == 0 {
		a.empty("You have no favorite items.")
	} else {
		for _, p := range favorites {
			fmt.Fprintln(a.out, productRow(p))
		}
	}

	for {
		cmd, args, err := a.prompt("favorites")
		if err != nil {
			return nil, err
		}
		switch cmd {
		case "":
			continue
		case "help":
			a.info("Commands: open <id>, back, home, orders, cart, chat, profile, quit")
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
