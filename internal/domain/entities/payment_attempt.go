package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrTerminalPollState = errors.New("payment attempt already reached a terminal state")

// PaymentStatus is the gateway-level outcome of a payment.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// IsTerminal reports whether no further gateway transition is expected.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusApproved, PaymentStatusRejected, PaymentStatusCancelled:
		return true
	}
	return false
}

// NormalizeGatewayStatus maps Mercado Pago payment statuses to PaymentStatus.
//
// approved/authorized settle the payment; rejected/cancelled/refunded/charged_back
// end it; anything else (pending, in_process, in_mediation) keeps it pending.
func NormalizeGatewayStatus(raw string) PaymentStatus {
	switch raw {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "refunded", "charged_back":
		return PaymentStatusRejected
	case "cancelled":
		return PaymentStatusCancelled
	default:
		return PaymentStatusPending
	}
}

// PollState is the client-observable state of a payment attempt.
type PollState string

const (
	PollStateIdle            PollState = "idle"
	PollStateAwaitingPayment PollState = "awaiting_payment"
	PollStateApproved        PollState = "approved"
	PollStateRejected        PollState = "rejected"
	PollStateTimedOut        PollState = "timed_out"
	PollStateCancelled       PollState = "cancelled"
)

func (s PollState) IsTerminal() bool {
	switch s {
	case PollStateApproved, PollStateRejected, PollStateTimedOut, PollStateCancelled:
		return true
	}
	return false
}

// AttemptKind tells the reconciler which side effects an approval triggers.
type AttemptKind string

const (
	AttemptKindDeposit   AttemptKind = "deposit"
	AttemptKindSelection AttemptKind = "selection"
)

// BookingDraft is the booking data collected before the deposit is paid.
type BookingDraft struct {
	ClientName   string          `json:"client_name"`
	ClientEmail  string          `json:"client_email"`
	ClientPhone  string          `json:"client_phone,omitempty"`
	SessionType  string          `json:"session_type"`
	SessionDate  time.Time       `json:"session_date"`
	SessionPrice decimal.Decimal `json:"session_price"`
}

// SelectionDraft is a gallery selection waiting for its extra-photo payment.
type SelectionDraft struct {
	GalleryID        string         `json:"gallery_id"`
	SelectedPhotoIDs []string       `json:"selected_photo_ids"`
	Breakdown        PriceBreakdown `json:"breakdown"`
}

// PaymentAttempt is a payment initiated with the gateway.
//
// Storage model (DynamoDB):
//   - PK: id (client reference sent to the gateway as external_reference)
//
// ExternalID is the gateway transaction id; it keys the order record once the
// attempt reaches a terminal state.
type PaymentAttempt struct {
	ID           string          `json:"id"`
	ExternalID   string          `json:"external_id"`
	Kind         AttemptKind     `json:"kind"`
	Status       PaymentStatus   `json:"status"`
	State        PollState       `json:"state"`
	Amount       decimal.Decimal `json:"amount"`
	PayerEmail   string          `json:"payer_email"`
	QRCode       string          `json:"qr_code,omitempty"`
	QRCodeBase64 string          `json:"qr_code_base64,omitempty"`

	Booking   *BookingDraft   `json:"booking,omitempty"`
	Selection *SelectionDraft `json:"selection,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transition moves the attempt to the given poll state. Once a terminal state is
// reached every further transition is refused with ErrTerminalPollState.
func (a *PaymentAttempt) Transition(to PollState, at time.Time) error {
	if a.State.IsTerminal() {
		return ErrTerminalPollState
	}
	a.State = to
	switch to {
	case PollStateApproved:
		a.Status = PaymentStatusApproved
	case PollStateRejected:
		a.Status = PaymentStatusRejected
	case PollStateCancelled:
		a.Status = PaymentStatusCancelled
	}
	a.UpdatedAt = at
	return nil
}
