package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/vastracart/vastra-api/models"
)

func signFor(secret, gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func newPaymentService(orders *mockOrderStore, carts *mockCartStore, gateway *mockGateway) *PaymentService {
	return &PaymentService{
		KeyID:     "rzp_test_key",
		KeySecret: "S",
		Gateway:   gateway,
		Orders:    orders,
		Carts:     carts,
		Failures:  &mockFailureStore{},
	}
}

func validVerifyInput() VerifyPaymentInput {
	in := VerifyPaymentInput{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		Order:             validPlaceOrderInput(),
	}
	in.RazorpaySignature = signFor("S", in.RazorpayOrderID, in.RazorpayPaymentID)
	return in
}

// gatewayEcho answers FetchOrder with the minor-unit amount matching the
// given major-unit total.
func gatewayEcho(total float64) *mockGateway {
	return &mockGateway{
		FetchOrderFunc: func(gatewayOrderID string) (map[string]interface{}, error) {
			return map[string]interface{}{
				"id":     gatewayOrderID,
				"amount": float64(MinorUnits(total)),
			}, nil
		},
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{199.5, 19950},
		{100, 10000},
		{1, 100},
		{0.125, 13},
		{0.375, 38},
		{0.005, 1},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.amount); got != tc.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestVerifyPaymentAcceptsExactSignature(t *testing.T) {
	orders := &mockOrderStore{}
	carts := &mockCartStore{}
	svc := newPaymentService(orders, carts, gatewayEcho(500))

	order, err := svc.VerifyPayment(context.Background(), 7, validVerifyInput())
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if order.PaymentMethod != models.PaymentMethodRazorpay {
		t.Errorf("payment method = %q, want RAZORPAY", order.PaymentMethod)
	}
	if order.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("payment status = %q, want paid", order.PaymentStatus)
	}
	if order.OrderStatus != models.OrderStatusProcessing {
		t.Errorf("order status = %q, want processing", order.OrderStatus)
	}
	if order.RazorpayOrderID != "order_1" || order.RazorpayPaymentID != "pay_1" || order.RazorpaySignature == "" {
		t.Errorf("gateway correlation fields not stamped: %+v", order)
	}
	if len(orders.created) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(orders.created))
	}
	if len(carts.cleared) != 1 || carts.cleared[0] != 7 {
		t.Fatalf("expected the user's cart to be cleared, got %v", carts.cleared)
	}
}

func TestVerifyPaymentRejectsMutatedSignature(t *testing.T) {
	orders := &mockOrderStore{}
	svc := newPaymentService(orders, &mockCartStore{}, gatewayEcho(500))

	in := validVerifyInput()
	// Flip one hex character.
	mutated := []byte(in.RazorpaySignature)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	in.RazorpaySignature = string(mutated)

	_, err := svc.VerifyPayment(context.Background(), 7, in)
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
	if len(orders.created) != 0 {
		t.Fatal("no order may be created on a bad signature")
	}
}

func TestVerifyPaymentMissingParameters(t *testing.T) {
	svc := newPaymentService(&mockOrderStore{}, &mockCartStore{}, gatewayEcho(500))

	for _, mutate := range []func(*VerifyPaymentInput){
		func(in *VerifyPaymentInput) { in.RazorpayOrderID = "" },
		func(in *VerifyPaymentInput) { in.RazorpayPaymentID = "" },
		func(in *VerifyPaymentInput) { in.RazorpaySignature = "" },
	} {
		in := validVerifyInput()
		mutate(&in)
		_, err := svc.VerifyPayment(context.Background(), 7, in)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error for missing parameter, got %v", err)
		}
	}
}

func TestVerifyPaymentReplayReturnsOriginalOrder(t *testing.T) {
	orders := &mockOrderStore{}
	svc := newPaymentService(orders, &mockCartStore{}, gatewayEcho(500))

	first, err := svc.VerifyPayment(context.Background(), 7, validVerifyInput())
	if err != nil {
		t.Fatalf("first VerifyPayment: %v", err)
	}

	second, err := svc.VerifyPayment(context.Background(), 7, validVerifyInput())
	if err != nil {
		t.Fatalf("replayed VerifyPayment: %v", err)
	}
	if second.OrderID != first.OrderID {
		t.Fatalf("replay created a new order %q, want original %q", second.OrderID, first.OrderID)
	}
	if len(orders.created) != 1 {
		t.Fatalf("replay duplicated the order: %d creates", len(orders.created))
	}
}

func TestVerifyPaymentRejectsTamperedAmount(t *testing.T) {
	orders := &mockOrderStore{}
	// Gateway charged 1000, client echoes 500.
	svc := newPaymentService(orders, &mockCartStore{}, gatewayEcho(1000))

	_, err := svc.VerifyPayment(context.Background(), 7, validVerifyInput())
	if !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch, got %v", err)
	}
	if len(orders.created) != 0 {
		t.Fatal("no order may be created on an amount mismatch")
	}
}

func TestCreateGatewayOrderRequiresCredentials(t *testing.T) {
	svc := newPaymentService(&mockOrderStore{}, &mockCartStore{}, &mockGateway{})
	svc.KeySecret = ""

	_, _, err := svc.CreateGatewayOrder(context.Background(), CreateGatewayOrderInput{Amount: 100})
	if !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}

func TestCreateGatewayOrderRejectsNonPositiveAmount(t *testing.T) {
	svc := newPaymentService(&mockOrderStore{}, &mockCartStore{}, &mockGateway{})

	_, _, err := svc.CreateGatewayOrder(context.Background(), CreateGatewayOrderInput{Amount: -1})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateGatewayOrderSubmitsMinorUnits(t *testing.T) {
	gateway := &mockGateway{}
	svc := newPaymentService(&mockOrderStore{}, &mockCartStore{}, gateway)

	order, keyID, err := svc.CreateGatewayOrder(context.Background(), CreateGatewayOrderInput{Amount: 199.5})
	if err != nil {
		t.Fatalf("CreateGatewayOrder: %v", err)
	}
	if keyID != "rzp_test_key" {
		t.Errorf("key id = %q, want the public key", keyID)
	}
	if order == nil {
		t.Fatal("expected a gateway order")
	}
	if len(gateway.createCalls) != 1 {
		t.Fatalf("expected one gateway call, got %d", len(gateway.createCalls))
	}
	call := gateway.createCalls[0]
	if call["amount"] != int64(19950) {
		t.Errorf("submitted amount = %v, want 19950 paise", call["amount"])
	}
	if call["currency"] != "INR" {
		t.Errorf("currency = %v, want INR default", call["currency"])
	}
	if call["receipt"] == "" {
		t.Error("expected a defaulted receipt")
	}
}

func TestRecordPaymentFailure(t *testing.T) {
	failures := &mockFailureStore{}
	svc := newPaymentService(&mockOrderStore{}, &mockCartStore{}, &mockGateway{})
	svc.Failures = failures

	err := svc.RecordPaymentFailure(context.Background(), PaymentFailureInput{
		Code:        "BAD_REQUEST_ERROR",
		Description: "Payment failed",
		OrderData:   []byte(`{"totalAmount":500}`),
	})
	if err != nil {
		t.Fatalf("RecordPaymentFailure: %v", err)
	}
	if len(failures.created) != 1 {
		t.Fatalf("expected one failure record, got %d", len(failures.created))
	}
	if failures.created[0].Code != "BAD_REQUEST_ERROR" {
		t.Errorf("code = %q", failures.created[0].Code)
	}
}
