package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle of a session booking.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookingNamespace seeds the deterministic ids derived from gateway transaction ids.
var bookingNamespace = uuid.MustParse("6f1c2b0e-8f0a-4a57-9a43-2f5d0a6b7c11")

// BookingIDFor derives the booking id from the deposit transaction id, so that an
// approval observed twice writes the same booking row.
func BookingIDFor(externalID string) string {
	return uuid.NewSHA1(bookingNamespace, []byte("booking:"+externalID)).String()
}

// GalleryIDFor derives the gallery id created alongside a booking.
func GalleryIDFor(bookingID string) string {
	return uuid.NewSHA1(bookingNamespace, []byte("gallery:"+bookingID)).String()
}

// Booking is a confirmed photo session.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (client_email-index): client_email
type Booking struct {
	ID                string          `json:"id"`
	ClientName        string          `json:"client_name"`
	ClientEmail       string          `json:"client_email"`
	ClientPhone       string          `json:"client_phone,omitempty"`
	SessionType       string          `json:"session_type"`
	SessionDate       time.Time       `json:"session_date"`
	SessionPrice      decimal.Decimal `json:"session_price"`
	DepositAmount     decimal.Decimal `json:"deposit_amount"`
	Status            BookingStatus   `json:"status"`
	PaymentExternalID string          `json:"payment_external_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
