package interfaces

import (
	"context"
	"photo_studio/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Upsert writes the order only while no row exists for its external id or the
// existing row is still pending. Otherwise the stored row is returned with
// applied=false: a duplicate transaction id is an already-applied write, not an error.

type IOrderRepository interface {
	Upsert(ctx context.Context, o entities.Order) (stored entities.Order, applied bool, err error)
	GetByExternalID(ctx context.Context, externalID string) (entities.Order, error)
}
