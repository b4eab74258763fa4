package interfaces

import (
	"context"
	"photo_studio/internal/domain/entities"
)

// IPaymentAttemptRepository persists payment attempts so that webhooks and
// status queries survive a restart.
//
// Save never overwrites an attempt whose stored poll state is terminal; it
// returns entities.ErrTerminalPollState instead. UpdateStatus only touches the
// gateway status and is used once the poll state is already final.
type IPaymentAttemptRepository interface {
	Save(ctx context.Context, a entities.PaymentAttempt) error
	GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error
}
