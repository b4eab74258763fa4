package interfaces

import (
	"context"
	"photo_studio/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Create is conditional on the id: re-creating an existing booking returns the
// stored row with created=false.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (stored entities.Booking, created bool, err error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByClientEmail(ctx context.Context, email string) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}
