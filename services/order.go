package services

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/vastracart/vastra-api/models"
)

const (
	defaultItemSize  = "M"
	defaultItemColor = "Default"
	defaultCountry   = "India"
)

type PlaceOrderItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
}

type PlaceOrderInput struct {
	Items         []PlaceOrderItem     `json:"items"`
	TotalAmount   float64              `json:"totalAmount"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Address       models.Address       `json:"address"`
	Notes         string               `json:"notes"`
}

type UpdateOrderStatusInput struct {
	Status        *models.OrderStatus   `json:"status"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus"`
}

type OrderService struct {
	Users    UserStore
	Products ProductStore
	Orders   OrderStore
	Carts    CartStore

	// Optional hook, invoked after the order is persisted. Failures are
	// logged, never surfaced to the caller.
	ConfirmationEmail func(user *models.User, order *models.Order) error
}

// PlaceOrder runs the checkout preconditions in a fixed sequence, each one a
// hard stop with no side effects, then persists the order and clears the
// cart. The order write always precedes the cart clear; a failed clear is
// logged and the order stands.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int, in PlaceOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, validationf("items must be a non-empty list")
	}
	if in.TotalAmount <= 0 {
		return nil, validationf("totalAmount must be a positive number")
	}
	if err := validateAddress(in.Address); err != nil {
		return nil, err
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user %d: %w", userID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	for _, item := range in.Items {
		if item.ProductID <= 0 {
			return nil, validationf("invalid product id %d", item.ProductID)
		}
		if item.Quantity < 1 {
			return nil, validationf("quantity for product %d must be at least 1", item.ProductID)
		}
		product, err := s.Products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("looking up product %d: %w", item.ProductID, err)
		}
		if product == nil {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, item.ProductID)
		}
	}

	order := newOrderFromInput(userID, in)
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PaymentMethodCash
	}
	if order.PaymentMethod != models.PaymentMethodCash {
		order.PaymentStatus = models.PaymentStatusPaid
	}

	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("saving order: %w", err)
	}

	if err := s.Carts.ClearForUser(ctx, userID); err != nil {
		log.Printf("Order %s saved but cart for user %d was not cleared: %v", order.OrderID, userID, err)
	}

	if s.ConfirmationEmail != nil {
		if err := s.ConfirmationEmail(user, order); err != nil {
			log.Printf("Order confirmation email for %s failed: %v", order.OrderID, err)
		}
	}

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.Orders.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("looking up order %s: %w", orderID, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus applies a partial update of order and/or payment status.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput) (*models.Order, error) {
	fields := map[string]any{}
	if in.Status != nil {
		fields["order_status"] = *in.Status
	}
	if in.PaymentStatus != nil {
		fields["payment_status"] = *in.PaymentStatus
	}
	if len(fields) == 0 {
		return nil, validationf("at least one of status or paymentStatus is required")
	}

	rows, err := s.Orders.UpdateFields(ctx, orderID, fields)
	if err != nil {
		return nil, fmt.Errorf("updating order %s: %w", orderID, err)
	}
	if rows == 0 {
		return nil, ErrOrderNotFound
	}
	return s.GetOrder(ctx, orderID)
}

func (s *OrderService) MarkOrdersSeen(ctx context.Context, userID int) error {
	if err := s.Orders.MarkSeenForUser(ctx, userID); err != nil {
		return fmt.Errorf("marking orders seen for user %d: %w", userID, err)
	}
	return nil
}

func validateAddress(addr models.Address) error {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", addr.FullName},
		{"street", addr.Street},
		{"city", addr.City},
		{"phone", addr.Phone},
	}
	for _, field := range required {
		if field.value == "" {
			return validationf("address is missing %s", field.name)
		}
	}
	return nil
}

// newOrderFromInput snapshots the submitted line items with their prices as
// given; they are never re-derived from the catalog afterwards.
func newOrderFromInput(userID int, in PlaceOrderInput) *models.Order {
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		size := item.Size
		if size == "" {
			size = defaultItemSize
		}
		color := item.Color
		if color == "" {
			color = defaultItemColor
		}
		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Size:        size,
			Color:       color,
		})
	}

	address := in.Address
	if address.Country == "" {
		address.Country = defaultCountry
	}

	return &models.Order{
		OrderID:       generateOrderID(),
		UserID:        userID,
		Items:         items,
		TotalAmount:   in.TotalAmount,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		OrderStatus:   models.OrderStatusPending,
		Address:       address,
		Notes:         in.Notes,
	}
}

func generateOrderID() string {
	return fmt.Sprintf("ORD%d%03d", time.Now().UnixMilli(), rand.IntN(1000))
}
