package request

import (
	"errors"
	"strings"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"
)

var (
	ErrInvalidSessionDate  = errors.New("invalid session date")
	ErrInvalidSessionPrice = errors.New("invalid session price")
)

// BookingDepositRequest opens a booking by paying its PIX deposit.
type BookingDepositRequest struct {
	ClientName   string  `json:"client_name" binding:"required" example:"Ana Souza"`
	ClientEmail  string  `json:"client_email" binding:"required,email" example:"ana@example.com"`
	ClientPhone  string  `json:"client_phone" example:"+5511999990000"`
	SessionType  string  `json:"session_type" binding:"required" example:"Ensaio gestante"`
	SessionDate  string  `json:"session_date" binding:"required" example:"2026-11-20T14:00:00-03:00"`
	SessionPrice float64 `json:"session_price" binding:"required" example:"800"`
	PayerEmail   string  `json:"payer_email" example:"ana@example.com"`
	DeviceID     string  `json:"device_id"`
}

// ToDraft validates the payload and converts it into a booking draft.
// Session dates are RFC 3339 or a plain date (YYYY-MM-DD).
func (r BookingDepositRequest) ToDraft() (entities.BookingDraft, error) {
	date, err := parseSessionDate(r.SessionDate)
	if err != nil {
		return entities.BookingDraft{}, err
	}
	price, err := pricing.ParseAmount(r.SessionPrice)
	if err != nil || !price.IsPositive() {
		return entities.BookingDraft{}, ErrInvalidSessionPrice
	}

	return entities.BookingDraft{
		ClientName:   strings.TrimSpace(r.ClientName),
		ClientEmail:  strings.TrimSpace(r.ClientEmail),
		ClientPhone:  strings.TrimSpace(r.ClientPhone),
		SessionType:  strings.TrimSpace(r.SessionType),
		SessionDate:  date,
		SessionPrice: price,
	}, nil
}

func parseSessionDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidSessionDate
}
