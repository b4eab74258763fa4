package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/usecase/interfaces"
)

var (
	ErrInvalidBookingDraft         = errors.New("invalid booking draft")
	ErrDepositNotRequired          = errors.New("deposit amount is zero")
	ErrPaymentAttemptNotFound      = errors.New("payment attempt not found")
	ErrInvalidPaymentAttemptID     = errors.New("invalid payment attempt id")
	ErrPaymentAttemptAlreadyClosed = errors.New("payment attempt already finished")
	ErrOrderNotFound               = errors.New("order not found")
	ErrInvalidOrderID              = errors.New("invalid order id")
)

// IBookingPaymentUseCase encapsulates the booking deposit flow:
//   - open a PIX deposit for a booking draft and poll it
//   - expose the attempt state to the client
//   - let the client give up on an attempt

type IBookingPaymentUseCase interface {
	StartDeposit(ctx context.Context, draft entities.BookingDraft, payer Payer) (entities.PaymentAttempt, error)
	GetAttempt(ctx context.Context, id string) (entities.PaymentAttempt, error)
	CancelAttempt(ctx context.Context, id string) (entities.PaymentAttempt, error)
	GetOrder(ctx context.Context, externalID string) (entities.Order, error)
}

type BookingPaymentUseCase struct {
	checkout pixCheckout
	pricing  entities.PricingConfig
}

var _ IBookingPaymentUseCase = (*BookingPaymentUseCase)(nil)

func NewBookingPaymentUseCase(gateway interfaces.IPaymentGateway, attempts interfaces.IPaymentAttemptRepository, orders interfaces.IOrderRepository, poller interfaces.IPaymentPoller, pricing entities.PricingConfig) *BookingPaymentUseCase {
	return &BookingPaymentUseCase{
		checkout: pixCheckout{gateway: gateway, attempts: attempts, orders: orders, poller: poller},
		pricing:  pricing,
	}
}

func (u *BookingPaymentUseCase) StartDeposit(ctx context.Context, draft entities.BookingDraft, payer Payer) (entities.PaymentAttempt, error) {
	draft.ClientName = strings.TrimSpace(draft.ClientName)
	draft.ClientEmail = strings.TrimSpace(draft.ClientEmail)
	draft.SessionType = strings.TrimSpace(draft.SessionType)
	log.Printf("[booking][usecase] start-deposit client_email=%s session_type=%s", draft.ClientEmail, draft.SessionType)

	if draft.ClientName == "" || draft.ClientEmail == "" || draft.SessionType == "" {
		return entities.PaymentAttempt{}, ErrInvalidBookingDraft
	}
	if draft.SessionDate.IsZero() {
		return entities.PaymentAttempt{}, fmt.Errorf("%w: session date is required", ErrInvalidBookingDraft)
	}
	if !draft.SessionPrice.IsPositive() {
		return entities.PaymentAttempt{}, fmt.Errorf("%w: session price must be > 0", ErrInvalidBookingDraft)
	}
	if strings.TrimSpace(payer.Email) == "" {
		payer.Email = draft.ClientEmail
	}

	deposit, err := pricing.Deposit(draft.SessionPrice, u.pricing.AdvancePercent)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if !deposit.IsPositive() {
		return entities.PaymentAttempt{}, ErrDepositNotRequired
	}

	a := newAttempt(entities.AttemptKindDeposit, payer)
	a.Amount = deposit
	a.Booking = &draft

	description := fmt.Sprintf("Sinal - %s %s", draft.SessionType, draft.SessionDate.Format("02/01/2006"))
	pending := entities.Order{
		ClientEmail: draft.ClientEmail,
		Metadata: map[string]string{
			"kind":            string(entities.AttemptKindDeposit),
			"session_price":   draft.SessionPrice.StringFixed(2),
			"advance_percent": u.pricing.AdvancePercent.String(),
		},
	}
	started, err := u.checkout.open(ctx, a, payer, description, pending)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	log.Printf("[booking][usecase] deposit awaiting payment attempt_id=%s external_id=%s amount=%s", started.ID, started.ExternalID, started.Amount.StringFixed(2))
	return started, nil
}

func (u *BookingPaymentUseCase) GetAttempt(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentAttempt{}, ErrInvalidPaymentAttemptID
	}
	a, err := u.checkout.attempts.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if a.ID == "" {
		return entities.PaymentAttempt{}, ErrPaymentAttemptNotFound
	}
	return a, nil
}

// CancelAttempt stops polling. The pending order is left untouched so that a
// payment completed afterwards is still reconciled by the webhook.
//
// The returned attempt is always the persisted one: when the payment settled
// before the cancellation took effect, that outcome is returned together with
// ErrPaymentAttemptAlreadyClosed.
func (u *BookingPaymentUseCase) CancelAttempt(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	a, err := u.GetAttempt(ctx, id)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if a.State.IsTerminal() {
		return a, ErrPaymentAttemptAlreadyClosed
	}

	if u.checkout.poller != nil && u.checkout.poller.Cancel(ctx, a.ID) {
		log.Printf("[booking][usecase] polling cancelled attempt_id=%s", a.ID)
		return u.closedAttempt(ctx, a.ID)
	}

	// Nobody is polling (e.g. after a restart): record the cancellation here.
	if err := a.Transition(entities.PollStateCancelled, time.Now().UTC()); err != nil {
		return a, ErrPaymentAttemptAlreadyClosed
	}
	err = u.checkout.attempts.Save(ctx, a)
	if errors.Is(err, entities.ErrTerminalPollState) {
		return u.closedAttempt(ctx, a.ID)
	}
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	return a, nil
}

// closedAttempt reads the attempt back after a cancellation raced with the
// poller or a webhook.
func (u *BookingPaymentUseCase) closedAttempt(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	stored, err := u.GetAttempt(ctx, id)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if stored.State.IsTerminal() && stored.State != entities.PollStateCancelled {
		log.Printf("[booking][usecase] cancel lost to settlement attempt_id=%s state=%s", id, stored.State)
		return stored, ErrPaymentAttemptAlreadyClosed
	}
	return stored, nil
}

func (u *BookingPaymentUseCase) GetOrder(ctx context.Context, externalID string) (entities.Order, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.checkout.orders.GetByExternalID(ctx, externalID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ExternalID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
