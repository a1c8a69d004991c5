package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mock_interfaces

// PaymentCharge is the request handed to the external payment provider.
// The amount always comes from the stored ticket, never from the browser.
type PaymentCharge struct {
	Amount      float64
	Description string
	Reference   string
	PayerEmail  string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The tracker uses it to charge the estimated repair cost and keeps the
// provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, charge PaymentCharge) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
