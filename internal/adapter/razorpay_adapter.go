package adapter

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridehub/service-rental/pkg/domain"
)

// PaymentGateway is the anti-corruption layer for the Razorpay order
// API. Amounts cross this boundary in paise (minor currency units).
type PaymentGateway interface {
	// CreateOrder registers a payment order for the given amount and
	// returns the gateway order id.
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (orderID string, err error)

	// VerifySignature checks the gateway's payment confirmation
	// signature for an order/payment pair.
	VerifySignature(orderID, paymentID, signature string) error
}

// SignPayload computes the Razorpay confirmation signature: HMAC-SHA256
// of "orderID|paymentID" keyed with the gateway secret, hex-encoded.
func SignPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// verifySignature is shared by gateway implementations. Comparison is
// constant-time.
func verifySignature(orderID, paymentID, signature, secret string) error {
	expected := SignPayload(orderID, paymentID, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domain.NewUpstreamError("invalid payment signature")
	}
	return nil
}

// MockRazorpayAdapter is a development/testing implementation of
// PaymentGateway. Orders are fabricated locally but signatures are
// verified with the real HMAC scheme so the confirmation path is
// exercised end to end.
type MockRazorpayAdapter struct {
	keySecret string
	logger    *zap.Logger
}

// NewMockRazorpayAdapter creates a mock gateway for development.
func NewMockRazorpayAdapter(keySecret string, logger *zap.Logger) *MockRazorpayAdapter {
	return &MockRazorpayAdapter{keySecret: keySecret, logger: logger}
}

// CreateOrder fabricates an order id and logs the would-be request.
func (m *MockRazorpayAdapter) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	orderID := fmt.Sprintf("order_mock_%s", uuid.New().String()[:8])

	m.logger.Info("[MOCK RAZORPAY] order created",
		zap.String("order_id", orderID),
		zap.Int64("amount_paise", amountPaise),
		zap.String("currency", currency),
		zap.String("receipt", receipt),
	)
	return orderID, nil
}

// VerifySignature checks the confirmation signature against the key secret.
func (m *MockRazorpayAdapter) VerifySignature(orderID, paymentID, signature string) error {
	return verifySignature(orderID, paymentID, signature, m.keySecret)
}

// Sign produces a valid signature for an order/payment pair. Test and
// local-tooling helper; the real gateway computes this on its side.
func (m *MockRazorpayAdapter) Sign(orderID, paymentID string) string {
	return SignPayload(orderID, paymentID, m.keySecret)
}
