package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"joytrade/internal/client/models"
	"joytrade/internal/client/nav"
)

// editScreen updates an existing listing. Every prompt shows the current
// value and keeps it on an empty line, so a quick enter-through changes
// nothing.
func (a *App) editScreen(ctx context.Context, id int) (nav.Screen, error) {
	if next, gated := a.requireLogin("edit a product"); gated {
		return next, nil
	}

	var (
		product    models.Product
		categories []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := a.api.Product(gctx, id)
		if err != nil {
			return err
		}
		product = p
		return nil
	})
	g.Go(func() error {
		cs, err := a.api.Categories(gctx)
		if err != nil {
			a.log.Warn(gctx, "categories fetch failed", "err", err)
			cs = fallbackCategories
		}
		categories = cs
		return nil
	})
	if err := g.Wait(); err != nil {
		a.alert("Fail to load product: " + err.Error())
		return nav.Profile{}, nil
	}

	a.title("Edit: " + product.Name)
	a.info("Press enter to keep the current value.")

	name, err := GetTextDefault(a.reader, "Name", product.Name, a.out)
	if err != nil {
		return nil, err
	}
	priceText, err := GetTextDefault(a.reader, "Price", strconv.FormatFloat(product.Price, 'f', -1, 64), a.out)
	if err != nil {
		return nil, err
	}
	price, perr := strconv.ParseFloat(priceText, 64)
	if perr != nil {
		a.alert("Invalid price.")
		return nav.Edit{ProductID: id}, nil
	}

	a.header("Categories: " + strings.Join(categories, ", "))
	category, err := GetTextDefault(a.reader, "Category", product.Category, a.out)
	if err != nil {
		return nil, err
	}
	description, err := GetTextDefault(a.reader, "Description", product.Description, a.out)
	if err != nil {
		return nil, err
	}
	tradeMethod, err := GetTextDefault(a.reader, "Trade method", product.TradeMethod, a.out)
	if err != nil {
		return nil, err
	}
	status, err := GetTextDefault(a.reader, "Status (available/sold/inactive)", string(product.Status), a.out)
	if err != nil {
		return nil, err
	}
	switch models.ProductStatus(status) {
	case models.StatusAvailable, models.StatusSold, models.StatusInactive:
	default:
		a.alert("Invalid status: " + status)
		return nav.Edit{ProductID: id}, nil
	}

	imagePath, err := getSimpleText(a.reader, "New image file (optional)", a.out)
	if err != nil {
		return nil, err
	}
	var (
		imageName string
		imageData []byte
	)
	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			a.alert("Cannot read file: " + err.Error())
			return nav.Edit{ProductID: id}, nil
		}
		imageName = filepath.Base(imagePath)
		imageData = data
	}

	edit := models.ProductEdit{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		TradeMethod: tradeMethod,
		Status:      models.ProductStatus(status),
	}
	if err := a.api.EditProduct(ctx, id, edit, imageName, imageData); err != nil {
		a.alert("Fail to save: " + err.Error())
		return nav.Edit{ProductID: id}, nil
	}
	fmt.Fprintln(a.out, "Product updated.")
	return nav.Profile{}, nil
}
