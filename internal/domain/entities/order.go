package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatusFromPayment maps a gateway status onto the order record status.
func OrderStatusFromPayment(s PaymentStatus) OrderStatus {
	switch s {
	case PaymentStatusApproved:
		return OrderStatusPaid
	case PaymentStatusRejected, PaymentStatusCancelled:
		return OrderStatusCancelled
	default:
		return OrderStatusPending
	}
}

// PaymentStatus is the inverse of OrderStatusFromPayment.
func (s OrderStatus) PaymentStatus() PaymentStatus {
	switch s {
	case OrderStatusPaid:
		return PaymentStatusApproved
	case OrderStatusCancelled:
		return PaymentStatusCancelled
	default:
		return PaymentStatusPending
	}
}

// Order is the persisted payment/transaction record.
//
// Storage model (DynamoDB):
//   - PK: external_id (gateway transaction id). The key is the idempotency
//     constraint: a transaction id never produces two order rows.
//   - GSI (client_email-index): client_email
//
// Metadata keeps the fee breakdown and payment method details.
type Order struct {
	ExternalID       string            `json:"external_id"`
	AttemptID        string            `json:"attempt_id"`
	BookingID        string            `json:"booking_id,omitempty"`
	GalleryID        string            `json:"gallery_id,omitempty"`
	ClientEmail      string            `json:"client_email"`
	SelectedPhotoIDs []string          `json:"selected_photo_ids,omitempty"`
	TotalAmount      decimal.Decimal   `json:"total_amount"`
	Status           OrderStatus       `json:"status"`
	PaymentMethod    string            `json:"payment_method"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
