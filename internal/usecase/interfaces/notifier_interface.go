package interfaces

import (
	"context"
	"photo_studio/internal/domain/entities"
)

// INotifier hands confirmation messages to the mailer. Delivery is fire-and-forget.
type INotifier interface {
	Send(ctx context.Context, n entities.Notification) error
}
