package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"joytrade/internal/client/models"
	"joytrade/internal/client/nav"
)

// profileScreen shows the account card plus the user's listings, favorites,
// and orders. The four fetches run concurrently and are joined before
// rendering; each degrades independently (logged, section stays empty) the
// way the original page swallows per-section failures.
func (a *App) profileScreen(ctx context.Context) (nav.Screen, error) {
	if next, gated := a.requireLogin("view your profile"); gated {
		return next, nil
	}

	a.info("Loading...")

	var (
		mine      []models.Product
		favorites []models.Product
		orders    []models.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ps, err := a.api.MyProducts(gctx)
		if err != nil {
			a.log.Warn(gctx, "my products fetch failed", "err", err)
			return nil
		}
		mine = ps
		return nil
	})
	g.Go(func() error {
		ps, err := a.api.Favorites(gctx)
		if err != nil {
			a.log.Warn(gctx, "favorites fetch failed", "err", err)
			return nil
		}
		favorites = ps
		return nil
	})
	g.Go(func() error {
		ords, err := a.api.Orders(gctx)
		if err != nil {
			a.log.Warn(gctx, "orders fetch failed", "err", err)
			return nil
		}
		orders = ords
		return nil
	})
	g.Go(func() error {
		u, err := a.api.CurrentUser(gctx)
		if err != nil {
			a.log.Warn(gctx, "user refresh failed", "err", err)
			return nil
		}
		a.session.SetUser(u)
		return nil
	})
	_ = g.Wait()

	render := func() {
		u := a.session.CurrentUser()
		a.title(u.Username)
		fmt.Fprintln(a.out, faintStyle.Render(u.Email))
		if u.Vacation {
			a.header("Vacation mode: ON (your listings are hidden)")
		} else {
			a.info("Vacation mode: off")
		}

		a.header("My Posted Products")
		if len(mine) == 0 {
			a.empty("No products posted yet.")
		} else {
			for _, p := range mine {
				fmt.Fprintf(a.out, "  [%d] %s — %s (%s)\n", p.ID, p.Name, money(p.Price), p.Status)
			}
		}

		a.header("My Favorites")
		if len(favorites) == 0 {
			a.empty("You have no favorite items.")
		} else {
			for _, p := range favorites {
				fmt.Fprintln(a.out, productRow(p))
			}
		}

		a.header("My Orders")
		if len(orders) == 0 {
			a.empty("No orders yet.")
		} else {
			for _, o := range orders {
				fmt.Fprintf(a.out, "  [%d] %s — %s  %s\n",
					o.Product.ID, o.Product.Name, money(o.Product.Price), faintStyle.Render(when(o.CreatedAt)))
			}
		}
	}
	render()

	for {
		cmd, args, err := a.prompt("profile")
		if err != nil {
			return nil, err
		}
		switch cmd {
		case "":
			continue
		case "help":
			a.info("Commands: show, avatar <file>, vacation, edit <id>, delete <id>, open <id>, back, home, quit")
		case "show":
			render()
		case "avatar":
			if len(args) == 0 {
				a.alert("Usage: avatar <image file>")
				continue
			}
			a.uploadAvatar(ctx, args[0])
		case "vacation":
			on, err := a.api.ToggleVacation(ctx)
			if err != nil {
				a.alert(err.Error())
				continue
			}
			if on {
				fmt.Fprintln(a.out, "Vacation mode ON")
			} else {
				fmt.Fprintln(a.out, "Vacation mode OFF")
			}
			if u, err := a.api.CurrentUser(ctx); err == nil {
				a.session.SetUser(u)
			}
		case "edit":
			id, ok := parseID(args)
			if !ok {
				a.alert("Usage: edit <product id>")
				continue
			}
			return nav.Edit{ProductID: id}, nil
		case "delete":
			id, ok := parseID(args)
			if !ok {
				a.alert("Usage: delete <product id>")
				continue
			}
			yes, err := confirm(a.reader, "Are you sure you want to delete this product?", a.out)
			if err != nil {
				return nil, err
			}
			if !yes {
				continue
			}
			if err := a.api.DeleteProduct(ctx, id); err != nil {
				a.alert("Fail to delete: " + err.Error())
				continue
			}
			kept := make([]models.Product, 0, len(mine))
			for _, p := range mine {
				if p.ID != id {
					kept = append(kept, p)
				}
			}
			mine = kept
			fmt.Fprintln(a.out, "Product deleted.")
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

// uploadAvatar reads an image from disk and replaces the cached user with
// the server's updated copy on success.
func (a *App) uploadAvatar(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		a.alert("Cannot read file: " + err.Error())
		return
	}
	u, err := a.api.UploadAvatar(ctx, filepath.Base(path), data)
	if err != nil {
		a.alert(err.Error())
		return
	}
	a.session.SetUser(u)
	fmt.Fprintln(a.out, "Avatar updated.")
}
