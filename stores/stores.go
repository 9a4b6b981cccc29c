package stores

import (
	"context"
	"errors"

	"github.com/vastracart/vastra-api/models"
	"github.com/vastracart/vastra-api/services"
	"gorm.io/gorm"
)

type UserStore struct {
	DB *gorm.DB
}

func (s *UserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type ProductStore struct {
	DB *gorm.DB
}

func (s *ProductStore) FindByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := s.DB.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

type OrderStore struct {
	DB *gorm.DB
}

func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	return s.DB.WithContext(ctx).Create(order).Error
}

func (s *OrderStore) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).Preload("Items").Where("order_id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) FindByPaymentID(ctx context.Context, paymentID string) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).Preload("Items").Where("razorpay_payment_id = ?", paymentID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) FindByUser(ctx context.Context, userID int, sort string) ([]models.Order, error) {
	if sort != "asc" && sort != "desc" {
		sort = "desc"
	}
	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at " + sort).
		Find(&orders).Error
	return orders, err
}

func (s *OrderStore) List(ctx context.Context, q services.OrderQuery) ([]models.Order, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 15
	}
	sort := q.Sort
	if sort != "asc" && sort != "desc" {
		sort = "desc"
	}

	query := s.DB.WithContext(ctx).Model(&models.Order{}).Preload("Items")
	if q.Search != "" {
		query = query.Where("order_id LIKE ?", "%"+q.Search+"%")
	}

	var orders []models.Order
	err := query.
		Order("created_at " + sort).
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	var count int64
	countQuery := s.DB.WithContext(ctx).Model(&models.Order{})
	if q.Search != "" {
		countQuery = countQuery.Where("order_id LIKE ?", "%"+q.Search+"%")
	}
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

func (s *OrderStore) UpdateFields(ctx context.Context, orderID string, fields map[string]any) (int64, error) {
	result := s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (s *OrderStore) MarkSeenForUser(ctx context.Context, userID int) error {
	return s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ? AND seen_by_admin = ?", userID, false).
		Update("seen_by_admin", true).Error
}

type CartStore struct {
	DB *gorm.DB
}

// ClearForUser removes the user's cart wholesale, items cascading with it.
func (s *CartStore) ClearForUser(ctx context.Context, userID int) error {
	return s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Cart{}).Error
}

type FailureStore struct {
	DB *gorm.DB
}

func (s *FailureStore) Create(ctx context.Context, failure *models.PaymentFailure) error {
	return s.DB.WithContext(ctx).Create(failure).Error
}
