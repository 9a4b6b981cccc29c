package services

import (
	"errors"
	"fmt"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"
	rzperrors "github.com/razorpay/razorpay-go/errors"
)

// GatewayClient is the slice of the payment provider's API this service
// uses. The production implementation wraps the Razorpay SDK.
type GatewayClient interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
	FetchOrder(gatewayOrderID string) (map[string]interface{}, error)
}

type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	return g.client.Order.Create(data, nil)
}

func (g *RazorpayGateway) FetchOrder(gatewayOrderID string) (map[string]interface{}, error) {
	return g.client.Order.Fetch(gatewayOrderID, nil, nil)
}

// classifyGatewayError folds SDK errors into the local taxonomy: credential
// rejections and parameter rejections are distinguishable by callers, all
// other gateway failures collapse into a generic error.
func classifyGatewayError(err error) error {
	var badRequest *rzperrors.BadRequestError
	if errors.As(err, &badRequest) {
		if strings.Contains(strings.ToLower(badRequest.Error()), "authentication") {
			return fmt.Errorf("%w: %s", ErrGatewayAuth, badRequest.Error())
		}
		return fmt.Errorf("%w: %s", ErrGatewayBadRequest, badRequest.Error())
	}
	return fmt.Errorf("payment gateway request failed: %w", err)
}
