package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidPayer = errors.New("invalid payer")

// Payer identifies who pays a PIX intent.
type Payer struct {
	Email    string
	DeviceID string
}

// pixCheckout opens a PIX payment with the gateway and hands the attempt to the
// poller. Both the booking deposit and the selection checkout go through it.
type pixCheckout struct {
	gateway  interfaces.IPaymentGateway
	attempts interfaces.IPaymentAttemptRepository
	orders   interfaces.IOrderRepository
	poller   interfaces.IPaymentPoller
}

func newAttempt(kind entities.AttemptKind, payer Payer) entities.PaymentAttempt {
	now := time.Now().UTC()
	return entities.PaymentAttempt{
		ID:         uuid.NewString(),
		Kind:       kind,
		Status:     entities.PaymentStatusPending,
		State:      entities.PollStateIdle,
		PayerEmail: strings.TrimSpace(payer.Email),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (c pixCheckout) open(ctx context.Context, a entities.PaymentAttempt, payer Payer, description string, pending entities.Order) (entities.PaymentAttempt, error) {
	if c.gateway == nil {
		log.Printf("[payment][checkout] gateway not configured attempt_id=%s", a.ID)
		return entities.PaymentAttempt{}, ErrPaymentGatewayNotConfigured
	}
	if c.attempts == nil || c.orders == nil {
		return entities.PaymentAttempt{}, errors.New("payment repositories not configured")
	}

	log.Printf("[payment][checkout] calling payment gateway attempt_id=%s kind=%s amount=%s", a.ID, a.Kind, a.Amount.StringFixed(2))
	pix, err := c.gateway.CreatePixPayment(ctx, interfaces.PixPaymentRequest{
		ExternalReference: a.ID,
		Amount:            a.Amount,
		Description:       description,
		PayerEmail:        a.PayerEmail,
		DeviceID:          payer.DeviceID,
	})
	if err != nil {
		log.Printf("[payment][checkout] payment gateway failed attempt_id=%s err=%v", a.ID, err)
		return entities.PaymentAttempt{}, mapGatewayError(err)
	}
	log.Printf("[payment][checkout] payment gateway success attempt_id=%s external_id=%s provider_status=%s", a.ID, pix.ID, pix.Status)

	a.ExternalID = pix.ID
	a.Status = entities.NormalizeGatewayStatus(pix.Status)
	a.QRCode = pix.QRCode
	a.QRCodeBase64 = pix.QRCodeBase64
	if err := a.Transition(entities.PollStateAwaitingPayment, time.Now().UTC()); err != nil {
		return entities.PaymentAttempt{}, err
	}

	if err := c.attempts.Save(ctx, a); err != nil {
		log.Printf("[payment][checkout] failed saving attempt attempt_id=%s err=%v", a.ID, err)
		return entities.PaymentAttempt{}, err
	}

	pending.ExternalID = a.ExternalID
	pending.AttemptID = a.ID
	pending.TotalAmount = a.Amount
	pending.Status = entities.OrderStatusPending
	pending.PaymentMethod = "pix"
	pending.CreatedAt = a.CreatedAt
	pending.UpdatedAt = a.UpdatedAt
	if _, _, err := c.orders.Upsert(ctx, pending); err != nil {
		log.Printf("[payment][checkout] failed saving pending order external_id=%s err=%v", a.ExternalID, err)
		return entities.PaymentAttempt{}, err
	}

	if c.poller != nil {
		c.poller.Start(a)
	}
	return a, nil
}
