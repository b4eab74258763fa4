package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"photo_studio/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPaymentID = errors.New("invalid mercado pago payment id")

// GatewayConfig configures the Mercado Pago gateway. Mock replaces the SDK with
// an in-memory gateway whose payments are approved on the first status lookup.
type GatewayConfig struct {
	AccessToken     string
	NotificationURL string
	PixExpiration   time.Duration
	Mock            bool
}

type MercadoPagoGateway struct {
	client          payment.Client
	notificationURL string
	pixExpiration   time.Duration

	mockMode bool
	mu       sync.Mutex
	mockRefs map[string]string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg GatewayConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, mockRefs: make(map[string]string)}, nil
	}

	if cfg.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:          payment.NewClient(sdkCfg),
		notificationURL: cfg.NotificationURL,
		pixExpiration:   cfg.PixExpiration,
	}, nil
}

// pixResponse is the part of the payment response the studio needs.
type pixResponse struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	ExternalReference  string `json:"external_reference"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (g *MercadoPagoGateway) CreatePixPayment(ctx context.Context, req interfaces.PixPaymentRequest) (interfaces.PixPayment, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(req)
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.PixPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start external_reference=%s amount=%s", req.ExternalReference, req.Amount.StringFixed(2))

	payload, err := json.Marshal(g.pixRequestPayload(req, time.Now()))
	if err != nil {
		return interfaces.PixPayment{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(payload, &sdkReq); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return interfaces.PixPayment{}, err
	}

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.PixPayment{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.PixPayment{}, err
	}
	out, err := parsePixResponse(raw)
	if err != nil {
		return interfaces.PixPayment{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%s provider_status=%s", out.ID, out.Status)
	return out, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, externalID string) (interfaces.GatewayPayment, error) {
	if g != nil && g.mockMode {
		return g.mockGet(externalID)
	}
	if g == nil || g.client == nil {
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(externalID))
	if err != nil {
		return interfaces.GatewayPayment{}, fmt.Errorf("%w: %q", ErrInvalidPaymentID, externalID)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%s err=%v", externalID, err)
		return interfaces.GatewayPayment{}, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	var parsed pixResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return interfaces.GatewayPayment{}, err
	}
	return interfaces.GatewayPayment{
		ID:                strconv.FormatInt(parsed.ID, 10),
		Status:            parsed.Status,
		ExternalReference: parsed.ExternalReference,
	}, nil
}

func (g *MercadoPagoGateway) pixRequestPayload(req interfaces.PixPaymentRequest, now time.Time) map[string]any {
	amount, _ := req.Amount.Round(2).Float64()
	body := map[string]any{
		"transaction_amount": amount,
		"description":        req.Description,
		"payment_method_id":  "pix",
		"external_reference": req.ExternalReference,
		"payer": map[string]any{
			"email": req.PayerEmail,
		},
	}
	if g.notificationURL != "" {
		body["notification_url"] = g.notificationURL
	}
	if g.pixExpiration > 0 {
		body["date_of_expiration"] = now.Add(g.pixExpiration).UTC().Format("2006-01-02T15:04:05.000-07:00")
	}
	if req.DeviceID != "" {
		body["metadata"] = map[string]any{"device_id": req.DeviceID}
	}
	return body
}

func parsePixResponse(raw []byte) (interfaces.PixPayment, error) {
	var parsed pixResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return interfaces.PixPayment{}, err
	}
	data := parsed.PointOfInteraction.TransactionData
	return interfaces.PixPayment{
		ID:           strconv.FormatInt(parsed.ID, 10),
		Status:       parsed.Status,
		QRCode:       data.QRCode,
		QRCodeBase64: data.QRCodeBase64,
		TicketURL:    data.TicketURL,
		Raw:          raw,
	}, nil
}

func (g *MercadoPagoGateway) mockCreate(req interfaces.PixPaymentRequest) (interfaces.PixPayment, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	g.mu.Lock()
	g.mockRefs[id] = req.ExternalReference
	g.mu.Unlock()

	resp := map[string]any{
		"id":                 id,
		"status":             "pending",
		"external_reference": req.ExternalReference,
		"transaction_amount": req.Amount.StringFixed(2),
		"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.PixPayment{}, err
	}

	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=pending", id)
	return interfaces.PixPayment{
		ID:           id,
		Status:       "pending",
		QRCode:       "00020126580014br.gov.bcb.pix0136mock-" + id,
		QRCodeBase64: "bW9jay1xci1jb2Rl",
		Raw:          raw,
	}, nil
}

func (g *MercadoPagoGateway) mockGet(externalID string) (interfaces.GatewayPayment, error) {
	g.mu.Lock()
	ref, ok := g.mockRefs[externalID]
	g.mu.Unlock()
	if !ok {
		return interfaces.GatewayPayment{}, fmt.Errorf("%w: %q", ErrInvalidPaymentID, externalID)
	}
	return interfaces.GatewayPayment{ID: externalID, Status: "approved", ExternalReference: ref}, nil
}
