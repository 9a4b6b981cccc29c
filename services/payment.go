package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/vastracart/vastra-api/models"
	"gorm.io/datatypes"
)

type CreateGatewayOrderInput struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

type VerifyPaymentInput struct {
	RazorpayOrderID   string          `json:"razorpay_order_id"`
	RazorpayPaymentID string          `json:"razorpay_payment_id"`
	RazorpaySignature string          `json:"razorpay_signature"`
	Order             PlaceOrderInput `json:"orderData"`
}

type PaymentFailureInput struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Reason      string          `json:"reason"`
	OrderData   json.RawMessage `json:"orderData"`
}

// ShippingNotifier forwards a finalized order to the shipping partner.
type ShippingNotifier interface {
	CreateShipment(ctx context.Context, order *models.Order) error
}

type PaymentService struct {
	KeyID     string
	KeySecret string

	Gateway  GatewayClient
	Orders   OrderStore
	Carts    CartStore
	Failures FailureStore

	// Optional; invoked after a verified order is persisted. Failures are
	// logged, never surfaced.
	Shipping ShippingNotifier
}

// MinorUnits converts a major-unit amount to the gateway's integer minor
// unit (rupees to paise), rounding half away from zero.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateGatewayOrder registers a payment intent with the gateway and returns
// the gateway order plus the public key id the client needs to open the
// payment widget. The secret never leaves the server.
func (s *PaymentService) CreateGatewayOrder(ctx context.Context, in CreateGatewayOrderInput) (map[string]interface{}, string, error) {
	if s.KeyID == "" || s.KeySecret == "" {
		return nil, "", ErrGatewayNotConfigured
	}
	if in.Amount <= 0 {
		return nil, "", validationf("amount must be a positive number")
	}

	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}
	receipt := in.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())
	}

	data := map[string]interface{}{
		"amount":   MinorUnits(in.Amount),
		"currency": currency,
		"receipt":  receipt,
	}

	order, err := s.Gateway.CreateOrder(data)
	if err != nil {
		return nil, "", classifyGatewayError(err)
	}

	return order, s.KeyID, nil
}

// VerifyPayment authenticates a gateway callback and, only on a valid
// signature, persists a paid order. A replayed payment id returns the order
// created the first time instead of a duplicate. The charged amount is
// re-fetched from the gateway and asserted against the client-echoed total
// before anything is written.
func (s *PaymentService) VerifyPayment(ctx context.Context, userID int, in VerifyPaymentInput) (*models.Order, error) {
	if in.RazorpayOrderID == "" || in.RazorpayPaymentID == "" || in.RazorpaySignature == "" {
		return nil, validationf("razorpay_order_id, razorpay_payment_id and razorpay_signature are required")
	}

	expected := computeSignature(s.KeySecret, in.RazorpayOrderID, in.RazorpayPaymentID)
	if !hmac.Equal([]byte(expected), []byte(in.RazorpaySignature)) {
		return nil, ErrSignatureMismatch
	}

	existing, err := s.Orders.FindByPaymentID(ctx, in.RazorpayPaymentID)
	if err != nil {
		return nil, fmt.Errorf("looking up payment %s: %w", in.RazorpayPaymentID, err)
	}
	if existing != nil {
		log.Printf("Payment %s already processed as order %s", in.RazorpayPaymentID, existing.OrderID)
		return existing, nil
	}

	if len(in.Order.Items) == 0 {
		return nil, validationf("orderData.items must be a non-empty list")
	}
	if in.Order.TotalAmount <= 0 {
		return nil, validationf("orderData.totalAmount must be a positive number")
	}

	gatewayOrder, err := s.Gateway.FetchOrder(in.RazorpayOrderID)
	if err != nil {
		return nil, classifyGatewayError(err)
	}
	charged, ok := amountOf(gatewayOrder)
	if !ok {
		return nil, fmt.Errorf("gateway order %s has no amount", in.RazorpayOrderID)
	}
	if charged != MinorUnits(in.Order.TotalAmount) {
		return nil, ErrAmountMismatch
	}

	order := newOrderFromInput(userID, in.Order)
	order.PaymentMethod = models.PaymentMethodRazorpay
	order.PaymentStatus = models.PaymentStatusPaid
	order.OrderStatus = models.OrderStatusProcessing
	order.RazorpayOrderID = in.RazorpayOrderID
	order.RazorpayPaymentID = in.RazorpayPaymentID
	order.RazorpaySignature = in.RazorpaySignature

	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("saving order: %w", err)
	}

	if userID > 0 {
		if err := s.Carts.ClearForUser(ctx, userID); err != nil {
			log.Printf("Order %s saved but cart for user %d was not cleared: %v", order.OrderID, userID, err)
		}
	}

	if s.Shipping != nil {
		if err := s.Shipping.CreateShipment(ctx, order); err != nil {
			log.Printf("Shipment for order %s was not created: %v", order.OrderID, err)
		}
	}

	return order, nil
}

// RecordPaymentFailure persists a client-reported gateway error. It is a
// logging sink, not a state transition.
func (s *PaymentService) RecordPaymentFailure(ctx context.Context, in PaymentFailureInput) error {
	failure := &models.PaymentFailure{
		Code:        in.Code,
		Description: in.Description,
		Source:      in.Source,
		Reason:      in.Reason,
	}
	if len(in.OrderData) > 0 {
		failure.OrderPayload = datatypes.JSON(in.OrderData)
	}
	if err := s.Failures.Create(ctx, failure); err != nil {
		return fmt.Errorf("recording payment failure: %w", err)
	}
	return nil
}

func computeSignature(secret, gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// amountOf reads the minor-unit amount out of a gateway order payload, which
// arrives as float64 after JSON decoding but as int64 from mocks.
func amountOf(order map[string]interface{}) (int64, bool) {
	switch v := order["amount"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}
