package interfaces

import (
	"context"
	"photo_studio/internal/domain/entities"
)

// IStatusResolver resolves the current status of a gateway transaction.
type IStatusResolver interface {
	Resolve(ctx context.Context, externalID string) (entities.PaymentStatus, error)
}

// IPaymentReconciler applies the side effects of terminal payment states.
// Both methods are idempotent.
type IPaymentReconciler interface {
	Approve(ctx context.Context, a entities.PaymentAttempt) error
	Reject(ctx context.Context, a entities.PaymentAttempt) error
}

// IPaymentPoller drives attempts from awaiting_payment to a terminal state.
type IPaymentPoller interface {
	Start(a entities.PaymentAttempt)
	Cancel(ctx context.Context, attemptID string) bool
}
