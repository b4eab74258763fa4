package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"photo_studio/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(GatewayConfig{}); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway(GatewayConfig{Mock: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pix, err := g.CreatePixPayment(context.Background(), interfaces.PixPaymentRequest{
		ExternalReference: "att-1",
		Amount:            decimal.RequireFromString("240"),
		PayerEmail:        "ana@test.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pix.ID == "" || pix.Status != "pending" || pix.QRCode == "" {
		t.Fatalf("unexpected pix payment: %+v", pix)
	}

	got, err := g.GetPayment(context.Background(), pix.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != "approved" || got.ExternalReference != "att-1" {
		t.Fatalf("unexpected payment: %+v", got)
	}

	if _, err := g.GetPayment(context.Background(), "unknown"); !errors.Is(err, ErrInvalidPaymentID) {
		t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, err := g.CreatePixPayment(context.Background(), interfaces.PixPaymentRequest{}); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, err := g.GetPayment(context.Background(), "1"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestPixRequestPayload(t *testing.T) {
	g := &MercadoPagoGateway{notificationURL: "https://studio.test/v1/webhooks/mercadopago", pixExpiration: 30 * time.Minute}
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	body := g.pixRequestPayload(interfaces.PixPaymentRequest{
		ExternalReference: "att-1",
		Amount:            decimal.RequireFromString("239.97"),
		Description:       "Sinal",
		PayerEmail:        "ana@test.com",
		DeviceID:          "dev-1",
	}, now)

	if body["payment_method_id"] != "pix" || body["external_reference"] != "att-1" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body["transaction_amount"] != 239.97 {
		t.Fatalf("expected 239.97, got %v", body["transaction_amount"])
	}
	if body["date_of_expiration"] != "2026-10-01T12:30:00.000+00:00" {
		t.Fatalf("unexpected expiration: %v", body["date_of_expiration"])
	}
	if body["notification_url"] == nil || body["metadata"] == nil {
		t.Fatalf("expected notification url and metadata: %+v", body)
	}
}

func TestParsePixResponse(t *testing.T) {
	raw := []byte(`{"id":123,"status":"pending","point_of_interaction":{"transaction_data":{"qr_code":"000201","qr_code_base64":"aGk=","ticket_url":"https://mp/t"}}}`)

	pix, err := parsePixResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pix.ID != "123" || pix.QRCode != "000201" || pix.QRCodeBase64 != "aGk=" || pix.TicketURL != "https://mp/t" {
		t.Fatalf("unexpected pix: %+v", pix)
	}
}
