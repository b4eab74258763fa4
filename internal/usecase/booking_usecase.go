package usecase

import (
	"context"
	"errors"
	"strings"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrInvalidBookingID        = errors.New("invalid booking id")
	ErrInvalidClientEmail      = errors.New("invalid client email")
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")
)

// IBookingUseCase exposes confirmed bookings and their galleries.

type IBookingUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByClientEmail(ctx context.Context, email string) ([]entities.Booking, error)
	Cancel(ctx context.Context, id string) (entities.Booking, error)
	GetGallery(ctx context.Context, id string) (entities.Gallery, error)
}

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	galleries interfaces.IGalleryRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, galleries interfaces.IGalleryRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo, galleries: galleries}
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListByClientEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidClientEmail
	}
	return u.repo.ListByClientEmail(ctx, email)
}

// Cancel marks the booking cancelled. The deposit is not refunded here.
func (u *BookingUseCase) Cancel(ctx context.Context, id string) (entities.Booking, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if current.Status == entities.BookingStatusCancelled {
		return entities.Booking{}, ErrBookingAlreadyCancelled
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, entities.BookingStatusCancelled)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}

func (u *BookingUseCase) GetGallery(ctx context.Context, id string) (entities.Gallery, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Gallery{}, ErrInvalidGalleryID
	}

	g, err := u.galleries.GetByID(ctx, id)
	if err != nil {
		return entities.Gallery{}, err
	}
	if g.ID == "" {
		return entities.Gallery{}, ErrGalleryNotFound
	}
	return g, nil
}
