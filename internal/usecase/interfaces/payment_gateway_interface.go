package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PixPaymentRequest is the payment intent sent to the gateway.
//
// ExternalReference carries the attempt id so webhooks can be reconciled.
type PixPaymentRequest struct {
	ExternalReference string
	Amount            decimal.Decimal
	Description       string
	PayerEmail        string
	DeviceID          string
}

// PixPayment is the gateway answer to a PIX payment intent.
type PixPayment struct {
	ID           string
	Status       string
	QRCode       string
	QRCodeBase64 string
	TicketURL    string
	Raw          json.RawMessage
}

// GatewayPayment is the current view of a payment at the gateway.
type GatewayPayment struct {
	ID                string
	Status            string
	ExternalReference string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePixPayment(ctx context.Context, req PixPaymentRequest) (PixPayment, error)
	GetPayment(ctx context.Context, externalID string) (GatewayPayment, error)
}
