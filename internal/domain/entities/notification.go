package entities

import "time"

type NotificationKind string

const (
	NotificationBookingConfirmed NotificationKind = "booking_confirmed"
	NotificationSelectionPaid    NotificationKind = "selection_paid"
)

// Notification is a confirmation message handed to the mailer.
type Notification struct {
	Kind       NotificationKind  `json:"kind"`
	To         string            `json:"to"`
	Subject    string            `json:"subject"`
	Data       map[string]string `json:"data,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
