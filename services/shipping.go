package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vastracart/vastra-api/models"
)

// Shipping partner tokens are valid for ten days; re-authenticate a day
// early rather than discovering a stale token mid-request.
const shippingTokenTTL = 9 * 24 * time.Hour

// ShippingClient talks to the shipping partner's API. The bearer token and
// its expiry live on the client and are refreshed lazily under a lock.
type ShippingClient struct {
	http     *resty.Client
	email    string
	password string

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewShippingClient(baseURL, email, password string) *ShippingClient {
	return &ShippingClient{
		http:     resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second),
		email:    email,
		password: password,
	}
}

func (c *ShippingClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expiry) {
		return c.token, nil
	}

	if c.email == "" || c.password == "" {
		return "", fmt.Errorf("shipping partner credentials are not set")
	}

	var result struct {
		Token string `json:"token"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(map[string]string{"email": c.email, "password": c.password}).
		SetResult(&result).
		Post("/v1/external/auth/login")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 || result.Token == "" {
		return "", fmt.Errorf("shipping login failed with status %d: %s", resp.StatusCode(), resp.Body())
	}

	c.token = result.Token
	c.expiry = time.Now().Add(shippingTokenTTL)
	return c.token, nil
}

// CreateShipment forwards an order to the shipping partner. Errors propagate
// to the caller; there is no retry.
func (c *ShippingClient) CreateShipment(ctx context.Context, order *models.Order) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	items := make([]map[string]any, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, map[string]any{
			"name":          item.ProductName,
			"sku":           fmt.Sprintf("%d-%s-%s", item.ProductID, item.Size, item.Color),
			"units":         item.Quantity,
			"selling_price": item.Price,
		})
	}

	payload := map[string]any{
		"order_id":              order.OrderID,
		"order_date":            order.CreatedAt.Format("2006-01-02 15:04"),
		"billing_customer_name": order.Address.FullName,
		"billing_address":       order.Address.Street,
		"billing_city":          order.Address.City,
		"billing_state":         order.Address.State,
		"billing_pincode":       order.Address.Postcode,
		"billing_country":       order.Address.Country,
		"billing_email":         order.Address.Email,
		"billing_phone":         order.Address.Phone,
		"shipping_is_billing":   true,
		"order_items":           items,
		"payment_method":        shippingPaymentMethod(order.PaymentMethod),
		"sub_total":             order.TotalAmount,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/v1/external/orders/create/adhoc")
	if err != nil {
		return err
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return fmt.Errorf("shipment request failed with status %d: %s", resp.StatusCode(), resp.Body())
	}
	return nil
}

func shippingPaymentMethod(method models.PaymentMethod) string {
	if method == models.PaymentMethodCash {
		return "COD"
	}
	return "Prepaid"
}
