package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/c-pro/geche"
	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"joytrade/internal/client/models"
	"joytrade/internal/logging"
)

// categoryTTL bounds staleness of the cached category list. Categories are
// near-static and requested by three different screens.
const categoryTTL = 5 * time.Minute

const categoriesKey = "categories"

// HTTPClient is the production Client over plain HTTP/JSON.
type HTTPClient struct {
	baseURL    string
	hc         *http.Client
	log        logging.Logger
	token      string
	categories geche.Geche[string, []string]
}

var _ Client = (*HTTPClient)(nil)

// New builds an HTTPClient for the service rooted at baseURL (including the
// /api prefix). The timeout applies per request; there is no retry layer.
// ctx bounds the lifetime of the category cache janitor.
func New(ctx context.Context, baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		hc:         &http.Client{Timeout: timeout},
		log:        log,
		categories: geche.NewMapTTLCache[string, []string](ctx, categoryTTL, time.Minute),
	}
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// ClearToken drops the bearer token; subsequent requests go out anonymous.
func (c *HTTPClient) ClearToken() {
	c.token = ""
}

// doJSON issues a request with an optional JSON payload and decodes the
// response into out (when out is non-nil and the response carries a body).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// doMultipart issues a POST with a multipart form: the given plain fields
// plus, when data is non-nil, a single file part that must sniff as an image.
func (c *HTTPClient) doMultipart(ctx context.Context, path, fileField, filename string, data []byte, fields map[string]string, out any) error {
	if data != nil && !filetype.IsImage(data) {
		return ErrNotAnImage
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write form field: %w", err)
		}
	}
	if data != nil {
		fw, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("write form file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	ctx := req.Context()
	start := time.Now()

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed",
			"method", req.Method, "path", req.URL.Path, "request_id", reqID, "err", err)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug(ctx, "request done",
		"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(), "request_id", reqID)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newError(resp.StatusCode, body)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Register creates an account. The service returns the credential token and
// the new user in one response.
func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (string, models.User, error) {
	payload := map[string]any{
		"username":  username,
		"email":     email,
		"password":  password,
		"is_seller": false,
	}
	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register/", payload, &resp); err != nil {
		return "", models.User{}, err
	}
	return resp.Token, resp.User, nil
}

// Login exchanges credentials for a bearer token. The caller fetches the
// user separately via CurrentUser once the token is installed.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{"username": username, "password": password}
	var resp struct {
		Access string `json:"access"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login/", payload, &resp); err != nil {
		return "", err
	}
	return resp.Access, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.doJSON(ctx, http.MethodGet, "/auth/me/", nil, &u)
	return u, err
}

func (c *HTTPClient) UploadAvatar(ctx context.Context, filename string, data []byte) (models.User, error) {
	var u models.User
	err := c.doMultipart(ctx, "/auth/upload-avatar/", "avatar", filename, data, nil, &u)
	return u, err
}

func (c *HTTPClient) ToggleVacation(ctx context.Context) (bool, error) {
	var resp struct {
		Vacation bool `json:"vacation"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/toggle-vacation/", nil, &resp); err != nil {
		return false, err
	}
	return resp.Vacation, nil
}

func (c *HTTPClient) Products(ctx context.Context) ([]models.Product, error) {
	var ps []models.Product
	err := c.doJSON(ctx, http.MethodGet, "/products/", nil, &ps)
	return ps, err
}

func (c *HTTPClient) Product(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	err := c.doJSON(ctx, http.MethodGet, "/products/"+strconv.Itoa(id)+"/", nil, &p)
	return p, err
}

func (c *HTTPClient) CreateProduct(ctx context.Context, p models.NewProduct) (models.Product, error) {
	var created models.Product
	err := c.doJSON(ctx, http.MethodPost, "/products/create/", p, &created)
	return created, err
}

func (c *HTTPClient) UpdateProductStatus(ctx context.Context, id int, status models.ProductStatus) (models.Product, error) {
	payload := map[string]string{"status": string(status)}
	var p models.Product
	err := c.doJSON(ctx, http.MethodPost, "/products/"+strconv.Itoa(id)+"/status/", payload, &p)
	return p, err
}

func (c *HTTPClient) EditProduct(ctx context.Context, id int, edit models.ProductEdit, imageName string, imageData []byte) error {
	fields := map[string]string{
		"name":         edit.Name,
		"description":  edit.Description,
		"price":        strconv.FormatFloat(edit.Price, 'f', -1, 64),
		"category":     edit.Category,
		"trade_method": edit.TradeMethod,
		"status":       string(edit.Status),
	}
	return c.doMultipart(ctx, "/products/"+strconv.Itoa(id)+"/edit/", "image", imageName, imageData, fields, nil)
}

func (c *HTTPClient) MyProducts(ctx context.Context) ([]models.Product, error) {
	var ps []models.Product
	err := c.doJSON(ctx, http.MethodGet, "/products/mine/", nil, &ps)
	return ps, err
}

// Categories returns the category list, served from a TTL cache between
// refreshes.
func (c *HTTPClient) Categories(ctx context.Context) ([]string, error) {
	if cats, err := c.categories.Get(categoriesKey); err == nil {
		return cats, nil
	}
	var cats []string
	if err := c.doJSON(ctx, http.MethodGet, "/categories/", nil, &cats); err != nil {
		return nil, err
	}
	c.categories.Set(categoriesKey, cats)
	return cats, nil
}

func (c *HTTPClient) UploadProductImage(ctx context.Context, filename string, data []byte) (string, error) {
	var resp struct {
		Image string `json:"image"`
	}
	if err := c.doMultipart(ctx, "/products/upload-image/", "image", filename, data, nil, &resp); err != nil {
		return "", err
	}
	return resp.Image, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id)+"/delete/", nil, nil)
}

// ToggleFavorite flips the (user, product) membership and returns the new
// state as reported by the server.
func (c *HTTPClient) ToggleFavorite(ctx context.Context, productID int) (bool, error) {
	payload := map[string]int{"product_id": productID}
	var resp struct {
		Favorited bool `json:"favorited"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/favorites/toggle/", payload, &resp); err != nil {
		return false, err
	}
	return resp.Favorited, nil
}

func (c *HTTPClient) Favorites(ctx context.Context) ([]models.Product, error) {
	var ps []models.Product
	err := c.doJSON(ctx, http.MethodGet, "/favorites/", nil, &ps)
	return ps, err
}

func (c *HTTPClient) PlaceOrder(ctx context.Context, productID int) error {
	payload := map[string]int{"product_id": productID}
	return c.doJSON(ctx, http.MethodPost, "/orders/place/", payload, nil)
}

func (c *HTTPClient) Orders(ctx context.Context) ([]models.Order, error) {
	var os []models.Order
	err := c.doJSON(ctx, http.MethodGet, "/orders/", nil, &os)
	return os, err
}

func (c *HTTPClient) Cart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	err := c.doJSON(ctx, http.MethodGet, "/cart/", nil, &items)
	return items, err
}

func (c *HTTPClient) AddToCart(ctx context.Context, productID int) error {
	payload := map[string]int{"product_id": productID}
	return c.doJSON(ctx, http.MethodPost, "/cart/add/", payload, nil)
}

func (c *HTTPClient) RemoveFromCart(ctx context.Context, productID int) error {
	payload := map[string]int{"product_id": productID}
	return c.doJSON(ctx, http.MethodPost, "/cart/remove/", payload, nil)
}

// PlaceCartOrder flushes the whole cart into orders and returns the names of
// the products ordered.
func (c *HTTPClient) PlaceCartOrder(ctx context.Context) ([]string, error) {
	var resp struct {
		Ordered []string `json:"ordered"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/cart/place-order/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ordered, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, productID int, receiver, text string) error {
	payload := map[string]any{
		"productId": productID,
		"receiver":  receiver,
		"message":   text,
	}
	return c.doJSON(ctx, http.MethodPost, "/chat/send/", payload, nil)
}

func (c *HTTPClient) Messages(ctx context.Context, productID int) ([]models.Message, error) {
	var ms []models.Message
	err := c.doJSON(ctx, http.MethodGet, "/chat/messages/"+strconv.Itoa(productID)+"/", nil, &ms)
	return ms, err
}

func (c *HTTPClient) Conversations(ctx context.Context) ([]models.Conversation, error) {
	var cs []models.Conversation
	err := c.doJSON(ctx, http.MethodGet, "/chat/conversations/", nil, &cs)
	return cs, err
}
