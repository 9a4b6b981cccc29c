package controllers

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vastracart/vastra-api/models"
	"github.com/vastracart/vastra-api/services"
)

// fakeOrderStore is an in-memory OrderStore, enough to drive the handlers
// end to end without a database.
type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[string]*models.Order{}}
}

func (s *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.OrderID] = order
	return nil
}

func (s *fakeOrderStore) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[orderID], nil
}

func (s *fakeOrderStore) FindByPaymentID(ctx context.Context, paymentID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.RazorpayPaymentID == paymentID {
			return order, nil
		}
	}
	return nil, nil
}

func (s *fakeOrderStore) FindByUser(ctx context.Context, userID int, sort string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (s *fakeOrderStore) List(ctx context.Context, q services.OrderQuery) ([]models.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, order := range s.orders {
		out = append(out, *order)
	}
	return out, int64(len(out)), nil
}

func (s *fakeOrderStore) UpdateFields(ctx context.Context, orderID string, fields map[string]any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return 0, nil
	}
	if status, ok := fields["order_status"]; ok {
		order.OrderStatus = status.(models.OrderStatus)
	}
	if status, ok := fields["payment_status"]; ok {
		order.PaymentStatus = status.(models.PaymentStatus)
	}
	return 1, nil
}

func (s *fakeOrderStore) MarkSeenForUser(ctx context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.UserID == userID {
			order.SeenByAdmin = true
		}
	}
	return nil
}

type fakeCartStore struct {
	mu      sync.Mutex
	cleared []int
}

func (s *fakeCartStore) ClearForUser(ctx context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared = append(s.cleared, userID)
	return nil
}

type fakeUserStore struct{}

func (s *fakeUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	return &models.User{Fullname: "Asha Rao", Email: "asha@example.com"}, nil
}

type fakeProductStore struct{}

func (s *fakeProductStore) FindByID(ctx context.Context, id int) (*models.Product, error) {
	return &models.Product{Name: "Kurta", Price: 100}, nil
}

type fakeFailureStore struct {
	mu      sync.Mutex
	created []*models.PaymentFailure
}

func (s *fakeFailureStore) Create(ctx context.Context, failure *models.PaymentFailure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, failure)
	return nil
}

type fakeGateway struct {
	CreateOrderFunc func(data map[string]interface{}) (map[string]interface{}, error)
	FetchOrderFunc  func(gatewayOrderID string) (map[string]interface{}, error)
}

func (g *fakeGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	if g.CreateOrderFunc != nil {
		return g.CreateOrderFunc(data)
	}
	return map[string]interface{}{"id": "order_fake", "amount": data["amount"], "currency": data["currency"]}, nil
}

func (g *fakeGateway) FetchOrder(gatewayOrderID string) (map[string]interface{}, error) {
	if g.FetchOrderFunc != nil {
		return g.FetchOrderFunc(gatewayOrderID)
	}
	return map[string]interface{}{"id": gatewayOrderID}, nil
}

// stubAuth injects the identity the middlewares would normally derive from
// the bearer token.
func stubAuth(userID int, role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("userId", userID)
		ctx.Set("user", jwt.MapClaims{"role": role, "user_id": float64(userID)})
		ctx.Next()
	}
}
