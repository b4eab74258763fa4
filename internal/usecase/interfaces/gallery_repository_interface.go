package interfaces

import (
	"context"
	"photo_studio/internal/domain/entities"
)

// IGalleryRepository abstracts DynamoDB persistence for Gallery.

type IGalleryRepository interface {
	Create(ctx context.Context, g entities.Gallery) (stored entities.Gallery, created bool, err error)
	GetByID(ctx context.Context, id string) (entities.Gallery, error)
	// RecordSelection stores the selection paid by paymentRef. A gallery already
	// paid by a different payment is returned unchanged together with
	// entities.ErrSelectionAlreadyRecorded.
	RecordSelection(ctx context.Context, id, paymentRef string, photoIDs []string) (entities.Gallery, error)
}
