package services

import (
	"context"
	"errors"

	"github.com/vastracart/vastra-api/models"
)

var errMockStore = errors.New("store unavailable")

type mockUserStore struct {
	FindByIDFunc func(ctx context.Context, id int) (*models.User, error)
}

func (m *mockUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &models.User{Fullname: "Test User", Email: "test@example.com"}, nil
}

type mockProductStore struct {
	FindByIDFunc func(ctx context.Context, id int) (*models.Product, error)
}

func (m *mockProductStore) FindByID(ctx context.Context, id int) (*models.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &models.Product{Name: "Test Product", Price: 100}, nil
}

type mockOrderStore struct {
	CreateFunc          func(ctx context.Context, order *models.Order) error
	FindByOrderIDFunc   func(ctx context.Context, orderID string) (*models.Order, error)
	FindByPaymentIDFunc func(ctx context.Context, paymentID string) (*models.Order, error)
	FindByUserFunc      func(ctx context.Context, userID int, sort string) ([]models.Order, error)
	ListFunc            func(ctx context.Context, q OrderQuery) ([]models.Order, int64, error)
	UpdateFieldsFunc    func(ctx context.Context, orderID string, fields map[string]any) (int64, error)
	MarkSeenFunc        func(ctx context.Context, userID int) error

	created []*models.Order
}

func (m *mockOrderStore) Create(ctx context.Context, order *models.Order) error {
	m.created = append(m.created, order)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	return nil
}

func (m *mockOrderStore) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	if m.FindByOrderIDFunc != nil {
		return m.FindByOrderIDFunc(ctx, orderID)
	}
	for _, order := range m.created {
		if order.OrderID == orderID {
			return order, nil
		}
	}
	return nil, nil
}

func (m *mockOrderStore) FindByPaymentID(ctx context.Context, paymentID string) (*models.Order, error) {
	if m.FindByPaymentIDFunc != nil {
		return m.FindByPaymentIDFunc(ctx, paymentID)
	}
	for _, order := range m.created {
		if order.RazorpayPaymentID == paymentID {
			return order, nil
		}
	}
	return nil, nil
}

func (m *mockOrderStore) FindByUser(ctx context.Context, userID int, sort string) ([]models.Order, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID, sort)
	}
	return nil, nil
}

func (m *mockOrderStore) List(ctx context.Context, q OrderQuery) ([]models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, 0, nil
}

func (m *mockOrderStore) UpdateFields(ctx context.Context, orderID string, fields map[string]any) (int64, error) {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, orderID, fields)
	}
	return 1, nil
}

func (m *mockOrderStore) MarkSeenForUser(ctx context.Context, userID int) error {
	if m.MarkSeenFunc != nil {
		return m.MarkSeenFunc(ctx, userID)
	}
	return nil
}

type mockCartStore struct {
	ClearForUserFunc func(ctx context.Context, userID int) error

	cleared []int
}

func (m *mockCartStore) ClearForUser(ctx context.Context, userID int) error {
	m.cleared = append(m.cleared, userID)
	if m.ClearForUserFunc != nil {
		return m.ClearForUserFunc(ctx, userID)
	}
	return nil
}

type mockFailureStore struct {
	CreateFunc func(ctx context.Context, failure *models.PaymentFailure) error

	created []*models.PaymentFailure
}

func (m *mockFailureStore) Create(ctx context.Context, failure *models.PaymentFailure) error {
	m.created = append(m.created, failure)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, failure)
	}
	return nil
}

type mockGateway struct {
	CreateOrderFunc func(data map[string]interface{}) (map[string]interface{}, error)
	FetchOrderFunc  func(gatewayOrderID string) (map[string]interface{}, error)

	createCalls []map[string]interface{}
}

func (m *mockGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	m.createCalls = append(m.createCalls, data)
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(data)
	}
	return map[string]interface{}{"id": "order_mock", "amount": data["amount"], "currency": data["currency"]}, nil
}

func (m *mockGateway) FetchOrder(gatewayOrderID string) (map[string]interface{}, error) {
	if m.FetchOrderFunc != nil {
		return m.FetchOrderFunc(gatewayOrderID)
	}
	return map[string]interface{}{"id": gatewayOrderID}, nil
}
