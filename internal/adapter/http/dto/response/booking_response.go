package response

import (
	"time"

	"photo_studio/internal/domain/entities"
)

type BookingResponse struct {
	BookingID         string    `json:"booking_id"`
	GalleryID         string    `json:"gallery_id"`
	ClientName        string    `json:"client_name"`
	ClientEmail       string    `json:"client_email"`
	ClientPhone       string    `json:"client_phone,omitempty"`
	SessionType       string    `json:"session_type"`
	SessionDate       time.Time `json:"session_date"`
	SessionPrice      string    `json:"session_price" example:"800.00"`
	DepositAmount     string    `json:"deposit_amount" example:"240.00"`
	Status            string    `json:"status"`
	PaymentExternalID string    `json:"payment_external_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		BookingID:         b.ID,
		GalleryID:         entities.GalleryIDFor(b.ID),
		ClientName:        b.ClientName,
		ClientEmail:       b.ClientEmail,
		ClientPhone:       b.ClientPhone,
		SessionType:       b.SessionType,
		SessionDate:       b.SessionDate,
		SessionPrice:      b.SessionPrice.StringFixed(2),
		DepositAmount:     b.DepositAmount.StringFixed(2),
		Status:            string(b.Status),
		PaymentExternalID: b.PaymentExternalID,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func FromBookings(list []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBooking(b))
	}
	return out
}

type GalleryResponse struct {
	GalleryID         string    `json:"gallery_id"`
	BookingID         string    `json:"booking_id"`
	Title             string    `json:"title"`
	PackagePhotoCount int       `json:"package_photo_count"`
	ExtraPhotoPrice   string    `json:"extra_photo_price" example:"30.00"`
	PhotoIDs          []string  `json:"photo_ids"`
	SelectedPhotoIDs  []string  `json:"selected_photo_ids"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromGallery(g entities.Gallery) GalleryResponse {
	return GalleryResponse{
		GalleryID:         g.ID,
		BookingID:         g.BookingID,
		Title:             g.Title,
		PackagePhotoCount: g.PackagePhotoCount,
		ExtraPhotoPrice:   g.ExtraPhotoPrice.StringFixed(2),
		PhotoIDs:          nonNil(g.PhotoIDs),
		SelectedPhotoIDs:  nonNil(g.SelectedPhotoIDs),
		Status:            string(g.Status),
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
