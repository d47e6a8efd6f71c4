package service

import (
	"context"

	"github.com/google/uuid"

	"autoportal-backend/internal/logger"
)

// stubGateway stands in for a real payment processor. Every charge succeeds
// with a synthetic transaction id.
type stubGateway struct{}

func NewStubGateway() PaymentGateway {
	return &stubGateway{}
}

func (g *stubGateway) Charge(ctx context.Context, paymentID string, amountCents int32, method string) (string, error) {
	logger.ExternalServiceCall("payment-gateway", "charge", "payment", paymentID, "amount_cents", amountCents, "method", method)
	txID := "tx_" + uuid.NewString()
	logger.ExternalServiceResult("payment-gateway", "charge", nil, "transaction", txID)
	return txID, nil
}
