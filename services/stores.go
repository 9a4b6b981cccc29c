package services

import (
	"context"

	"github.com/vastracart/vastra-api/models"
)

// Store lookups return (nil, nil) when the record does not exist so callers
// can tell absence from infrastructure failure.

type UserStore interface {
	FindByID(ctx context.Context, id int) (*models.User, error)
}

type ProductStore interface {
	FindByID(ctx context.Context, id int) (*models.Product, error)
}

type OrderQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*models.Order, error)
	FindByUser(ctx context.Context, userID int, sort string) ([]models.Order, error)
	List(ctx context.Context, q OrderQuery) ([]models.Order, int64, error)
	UpdateFields(ctx context.Context, orderID string, fields map[string]any) (int64, error)
	MarkSeenForUser(ctx context.Context, userID int) error
}

type CartStore interface {
	ClearForUser(ctx context.Context, userID int) error
}

type FailureStore interface {
	Create(ctx context.Context, failure *models.PaymentFailure) error
}
