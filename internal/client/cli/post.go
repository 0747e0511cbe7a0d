package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"joytrade/internal/client/models"
	"joytrade/internal/client/nav"
)

// fallbackCategories keeps the post form usable when the category endpoint
// is down.
var fallbackCategories = []string{"Electronics", "Books", "Other"}

// postScreen walks the user through creating a listing. All fields are
// validated locally before any request; an image file is optional and, if
// given, uploaded first so the create payload can reference its URL.
func (a *App) postScreen(ctx context.Context) (nav.Screen, error) {
	if next, gated := a.requireLogin("post a product"); gated {
		return next, nil
	}

	categories, err := a.api.Categories(ctx)
	if err != nil {
		a.log.Warn(ctx, "categories fetch failed", "err", err)
		categories = fallbackCategories
	}

	a.title("Post a Product")
	a.info("Leave the name empty to cancel.")

	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return nil, err
	}
	if name == "" {
		a.info("Cancelled.")
		return nav.Home{}, nil
	}

	priceText, err := getSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return nil, err
	}
	price, perr := strconv.ParseFloat(priceText, 64)

	a.header("Categories: " + strings.Join(categories, ", "))
	category, err := getSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return nil, err
	}

	imagePath, err := getSimpleText(a.reader, "Image file (optional)", a.out)
	if err != nil {
		return nil, err
	}

	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return nil, err
	}

	tradeMethod, err := getSimpleText(a.reader, "Trade method (meetup/delivery)", a.out)
	if err != nil {
		return nil, err
	}

	if perr != nil || name == "" || category == "" || description == "" || tradeMethod == "" {
		a.alert("Please fill in all fields.")
		return nav.Post{}, nil
	}

	image := "🆕"
	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			a.alert("Cannot read file: " + err.Error())
			return nav.Post{}, nil
		}
		url, err := a.api.UploadProductImage(ctx, filepath.Base(imagePath), data)
		if err != nil {
			a.alert("Image upload failed: " + err.Error())
			return nav.Post{}, nil
		}
		image = url
	}

	p, err := a.api.CreateProduct(ctx, models.NewProduct{
		Name:        name,
		Price:       price,
		Image:       image,
		Description: description,
		Category:    category,
		TradeMethod: tradeMethod,
	})
	if err != nil {
		a.alert("Fail to post: " + err.Error())
		return nav.Post{}, nil
	}
	fmt.Fprintf(a.out, "Product posted! (#%d)\n", p.ID)
	return nav.Home{}, nil
}
