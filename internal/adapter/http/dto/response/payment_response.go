package response

import (
	"time"

	"photo_studio/internal/domain/entities"
)

type PaymentAttemptResponse struct {
	AttemptID    string    `json:"attempt_id"`
	ExternalID   string    `json:"external_id,omitempty"`
	Kind         string    `json:"kind"`
	Status       string    `json:"status"`
	State        string    `json:"state"`
	Amount       string    `json:"amount" example:"239.97"`
	QRCode       string    `json:"qr_code,omitempty"`
	QRCodeBase64 string    `json:"qr_code_base64,omitempty"`
	GalleryID    string    `json:"gallery_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromPaymentAttempt(a entities.PaymentAttempt) PaymentAttemptResponse {
	resp := PaymentAttemptResponse{
		AttemptID:    a.ID,
		ExternalID:   a.ExternalID,
		Kind:         string(a.Kind),
		Status:       string(a.Status),
		State:        string(a.State),
		Amount:       a.Amount.StringFixed(2),
		QRCode:       a.QRCode,
		QRCodeBase64: a.QRCodeBase64,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.Selection != nil {
		resp.GalleryID = a.Selection.GalleryID
	}
	return resp
}

type OrderResponse struct {
	ExternalID       string            `json:"external_id"`
	AttemptID        string            `json:"attempt_id,omitempty"`
	BookingID        string            `json:"booking_id,omitempty"`
	GalleryID        string            `json:"gallery_id,omitempty"`
	ClientEmail      string            `json:"client_email,omitempty"`
	SelectedPhotoIDs []string          `json:"selected_photo_ids,omitempty"`
	TotalAmount      string            `json:"total_amount" example:"171.00"`
	Status           string            `json:"status"`
	PaymentMethod    string            `json:"payment_method"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ExternalID:       o.ExternalID,
		AttemptID:        o.AttemptID,
		BookingID:        o.BookingID,
		GalleryID:        o.GalleryID,
		ClientEmail:      o.ClientEmail,
		SelectedPhotoIDs: o.SelectedPhotoIDs,
		TotalAmount:      o.TotalAmount.StringFixed(2),
		Status:           string(o.Status),
		PaymentMethod:    o.PaymentMethod,
		Metadata:         o.Metadata,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
