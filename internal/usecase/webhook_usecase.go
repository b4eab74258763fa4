package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"
)

var ErrInvalidWebhookPayload = errors.New("invalid webhook payload")

// IWebhookUseCase handles gateway notifications.
//
// The notification only says "payment X changed"; the status is always read
// back from the gateway before anything is written.
type IWebhookUseCase interface {
	HandlePaymentNotification(ctx context.Context, topic, paymentID string) error
}

type WebhookUseCase struct {
	gateway    interfaces.IPaymentGateway
	attempts   interfaces.IPaymentAttemptRepository
	reconciler interfaces.IPaymentReconciler
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(gateway interfaces.IPaymentGateway, attempts interfaces.IPaymentAttemptRepository, reconciler interfaces.IPaymentReconciler) *WebhookUseCase {
	return &WebhookUseCase{gateway: gateway, attempts: attempts, reconciler: reconciler}
}

func (u *WebhookUseCase) HandlePaymentNotification(ctx context.Context, topic, paymentID string) error {
	topic = strings.TrimSpace(topic)
	paymentID = strings.TrimSpace(paymentID)
	log.Printf("[payment][webhook] received topic=%s payment_id=%s", topic, paymentID)

	if topic != "payment" && !strings.HasPrefix(topic, "payment.") {
		log.Printf("[payment][webhook] ignoring topic=%s", topic)
		return nil
	}
	if paymentID == "" {
		return ErrInvalidWebhookPayload
	}
	if u.gateway == nil {
		return ErrPaymentGatewayNotConfigured
	}

	p, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][webhook] gateway lookup failed payment_id=%s err=%v", paymentID, err)
		return mapGatewayError(err)
	}
	status := entities.NormalizeGatewayStatus(p.Status)
	if !status.IsTerminal() {
		log.Printf("[payment][webhook] payment still pending payment_id=%s provider_status=%s", paymentID, p.Status)
		return nil
	}

	a, err := u.attempts.GetByID(ctx, p.ExternalReference)
	if err != nil {
		return err
	}
	if a.ID == "" {
		log.Printf("[payment][webhook] unknown attempt payment_id=%s external_reference=%s", paymentID, p.ExternalReference)
		return ErrPaymentAttemptNotFound
	}
	if a.ExternalID == "" {
		a.ExternalID = paymentID
	}

	if status == entities.PaymentStatusApproved {
		err = u.reconciler.Approve(ctx, a)
	} else {
		a.Status = status
		err = u.reconciler.Reject(ctx, a)
	}
	if err != nil {
		log.Printf("[payment][webhook] reconcile failed attempt_id=%s status=%s err=%v", a.ID, status, err)
		return err
	}

	if err := u.settle(ctx, a, status); err != nil {
		log.Printf("[payment][webhook] failed saving attempt attempt_id=%s err=%v", a.ID, err)
	}
	log.Printf("[payment][webhook] reconciled attempt_id=%s external_id=%s status=%s", a.ID, a.ExternalID, status)
	return nil
}

// settle moves an open attempt to the poll state matching the gateway status.
// An attempt that already finished (timed out, cancelled, or settled by the
// poller) keeps its poll state and only records the gateway status.
func (u *WebhookUseCase) settle(ctx context.Context, a entities.PaymentAttempt, status entities.PaymentStatus) error {
	if a.State.IsTerminal() {
		return u.attempts.UpdateStatus(ctx, a.ID, status)
	}

	to := entities.PollStateRejected
	if status == entities.PaymentStatusApproved {
		to = entities.PollStateApproved
	}
	if err := a.Transition(to, time.Now().UTC()); err != nil {
		return err
	}
	a.Status = status

	err := u.attempts.Save(ctx, a)
	if errors.Is(err, entities.ErrTerminalPollState) {
		log.Printf("[payment][webhook] attempt finished concurrently attempt_id=%s", a.ID)
		return u.attempts.UpdateStatus(ctx, a.ID, status)
	}
	return err
}
