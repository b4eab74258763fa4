package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrSelectionAlreadyRecorded is returned when a gallery already holds a
// selection paid by a different payment.
var ErrSelectionAlreadyRecorded = errors.New("gallery selection already recorded by another payment")

type GalleryStatus string

const (
	GalleryStatusAwaitingSelection GalleryStatus = "awaiting_selection"
	GalleryStatusSelectionPaid     GalleryStatus = "selection_paid"
)

// Gallery is the client album created for a confirmed booking.
//
// PackagePhotoCount and ExtraPhotoPrice are copied from the pricing config when
// the gallery is created. SelectionPaymentID is the gateway transaction that
// paid the recorded selection.
type Gallery struct {
	ID                 string          `json:"id"`
	BookingID          string          `json:"booking_id"`
	Title              string          `json:"title"`
	ClientEmail        string          `json:"client_email"`
	PackagePhotoCount  int             `json:"package_photo_count"`
	ExtraPhotoPrice    decimal.Decimal `json:"extra_photo_price"`
	PhotoIDs           []string        `json:"photo_ids,omitempty"`
	SelectedPhotoIDs   []string        `json:"selected_photo_ids,omitempty"`
	SelectionPaymentID string          `json:"selection_payment_id,omitempty"`
	Status             GalleryStatus   `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
