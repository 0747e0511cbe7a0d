package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"joytrade/internal/client/catalog"
	"joytrade/internal/client/models"
	"joytrade/internal/client/nav"
)

// homeScreen is the catalog: products and categories are fetched
// concurrently and joined, then filtering and sorting happen locally over
// the fetched list without touching its server order.
func (a *App) homeScreen(ctx context.Context) (nav.Screen, error) {
	a.title("Products")
	a.info("Loading...")

	var (
		products []models.Product
		cats     []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = a.api.Products(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = a.api.Categories(gctx)
		return err
	})
	loadErr := g.Wait()
	if loadErr != nil {
		a.alert("Failed to load. Please try again: " + loadErr.Error())
	}

	categories := []string{catalog.AllCategories}
	for _, c := range cats {
		if c != catalog.AllCategories {
			categories = append(categories, c)
		}
	}

	category := catalog.AllCategories
	order := catalog.SortDefault
	keyword := ""

	render := func() {
		if loadErr != nil {
			return
		}
		shown := catalog.SortByPrice(catalog.Filter(catalog.Visible(products), category, keyword), order)
		fmt.Fprintf(a.out, "%s\n", faintStyle.Render(
			fmt.Sprintf("category=%s sort=%s search=%q", category, order, keyword)))
		if len(shown) == 0 {
			a.empty("No matching products found.")
			return
		}
		for _, p := range shown {
			fmt.Fprintln(a.out, productRow(p))
		}
	}
	render()

	for {
		cmd, args, err := a.prompt("home")
		if err != nil {
			return nil, err
		}
		switch cmd {
		case "":
			continue
		case "help":
			a.info("Commands: list, search <text>, category <name>, sort asc|desc|default, open <id>, home, favorites, orders, cart, chat, profile, post, login, logout, quit")
		case "list":
			render()
		case "search":
			keyword = strings.Join(args, " ")
			render()
		case "category":
			name := strings.Join(args, " ")
			if name == "" {
				a.info("Categories: " + strings.Join(categories, ", "))
				continue
			}
			category = name
			render()
		case "sort":
			if len(args) == 0 {
				a.alert("Usage: sort asc|desc|default")
				continue
			}
			o, ok := catalog.ParseSortOrder(args[0])
			if !ok {
				a.alert("Usage: sort asc|desc|default")
				continue
			}
			order = o
			render()
		case "open":
			id, ok := parseID(args)
			if !ok {
				a.alert("Usage: open <product id>")
				continue
			}
			return nav.Product{ID: id}, nil
		default:
			if next, err, ok := a.handleCommon(ctx, cmd); ok {
				return next, err
			}
			a.alert("Unknown command: " + cmd)
		}
	}
}

func parseID(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
