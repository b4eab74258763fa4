package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrGalleryNotFound      = errors.New("gallery not found")
	ErrInvalidGalleryID     = errors.New("invalid gallery id")
	ErrUnknownPhoto         = errors.New("photo does not belong to gallery")
	ErrSelectionAlreadyPaid = errors.New("gallery selection already paid")
)

var freeSelectionNamespace = uuid.MustParse("0b7f3c8e-5d1a-4c3e-9b2f-7a6d4e1c9f20")

// CheckoutResult is the outcome of a selection checkout: either a settled
// zero-value order (selection within the package) or a PIX attempt to pay.
type CheckoutResult struct {
	Breakdown entities.PriceBreakdown
	Attempt   *entities.PaymentAttempt
	Order     *entities.Order
}

// ISelectionUseCase prices and settles the photos a client picks in a gallery.

type ISelectionUseCase interface {
	Quote(ctx context.Context, galleryID string, photoIDs []string) (entities.PriceBreakdown, error)
	Checkout(ctx context.Context, galleryID string, photoIDs []string, payer Payer) (CheckoutResult, error)
}

type SelectionUseCase struct {
	galleries  interfaces.IGalleryRepository
	reconciler interfaces.IPaymentReconciler
	checkout   pixCheckout
	pricing    entities.PricingConfig
}

var _ ISelectionUseCase = (*SelectionUseCase)(nil)

func NewSelectionUseCase(galleries interfaces.IGalleryRepository, reconciler interfaces.IPaymentReconciler, gateway interfaces.IPaymentGateway, attempts interfaces.IPaymentAttemptRepository, orders interfaces.IOrderRepository, poller interfaces.IPaymentPoller, pricing entities.PricingConfig) *SelectionUseCase {
	return &SelectionUseCase{
		galleries:  galleries,
		reconciler: reconciler,
		checkout:   pixCheckout{gateway: gateway, attempts: attempts, orders: orders, poller: poller},
		pricing:    pricing,
	}
}

func (u *SelectionUseCase) Quote(ctx context.Context, galleryID string, photoIDs []string) (entities.PriceBreakdown, error) {
	_, selected, breakdown, err := u.price(ctx, galleryID, photoIDs)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}
	log.Printf("[selection][usecase] quote gallery_id=%s selected=%d total_due=%s", galleryID, len(selected), breakdown.TotalDue.StringFixed(2))
	return breakdown, nil
}

func (u *SelectionUseCase) Checkout(ctx context.Context, galleryID string, photoIDs []string, payer Payer) (CheckoutResult, error) {
	gallery, selected, breakdown, err := u.price(ctx, galleryID, photoIDs)
	if err != nil {
		return CheckoutResult{}, err
	}
	if gallery.Status == entities.GalleryStatusSelectionPaid {
		return CheckoutResult{}, ErrSelectionAlreadyPaid
	}
	if strings.TrimSpace(payer.Email) == "" {
		payer.Email = gallery.ClientEmail
	}
	if strings.TrimSpace(payer.Email) == "" {
		return CheckoutResult{}, ErrInvalidPayer
	}

	a := newAttempt(entities.AttemptKindSelection, payer)
	a.Amount = breakdown.TotalDue
	a.Selection = &entities.SelectionDraft{
		GalleryID:        gallery.ID,
		SelectedPhotoIDs: selected,
		Breakdown:        breakdown,
	}

	if breakdown.IsFreeTier {
		// Within the package: nothing to charge, settle immediately.
		a.ExternalID = freeSelectionID(gallery.ID, selected)
		if u.reconciler == nil {
			return CheckoutResult{}, errors.New("payment reconciler not configured")
		}
		if err := u.reconciler.Approve(ctx, a); err != nil {
			log.Printf("[selection][usecase] free selection failed gallery_id=%s err=%v", gallery.ID, err)
			return CheckoutResult{}, err
		}
		order, err := u.checkout.orders.GetByExternalID(ctx, a.ExternalID)
		if err != nil {
			return CheckoutResult{}, err
		}
		log.Printf("[selection][usecase] free selection settled gallery_id=%s external_id=%s", gallery.ID, a.ExternalID)
		return CheckoutResult{Breakdown: breakdown, Order: &order}, nil
	}

	description := fmt.Sprintf("Fotos extras (%d) - %s", breakdown.ExtraCount, gallery.Title)
	pending := entities.Order{
		BookingID:        gallery.BookingID,
		GalleryID:        gallery.ID,
		ClientEmail:      a.PayerEmail,
		SelectedPhotoIDs: selected,
		Metadata:         breakdownMetadata(a.Kind, breakdown),
	}
	started, err := u.checkout.open(ctx, a, payer, description, pending)
	if err != nil {
		return CheckoutResult{}, err
	}
	log.Printf("[selection][usecase] checkout awaiting payment gallery_id=%s attempt_id=%s total_due=%s", gallery.ID, started.ID, started.Amount.StringFixed(2))
	return CheckoutResult{Breakdown: breakdown, Attempt: &started}, nil
}

// price loads the gallery, normalises the selection into a set and prices it
// with the gallery's own package terms.
func (u *SelectionUseCase) price(ctx context.Context, galleryID string, photoIDs []string) (entities.Gallery, []string, entities.PriceBreakdown, error) {
	galleryID = strings.TrimSpace(galleryID)
	if galleryID == "" {
		return entities.Gallery{}, nil, entities.PriceBreakdown{}, ErrInvalidGalleryID
	}

	gallery, err := u.galleries.GetByID(ctx, galleryID)
	if err != nil {
		return entities.Gallery{}, nil, entities.PriceBreakdown{}, err
	}
	if gallery.ID == "" {
		return entities.Gallery{}, nil, entities.PriceBreakdown{}, ErrGalleryNotFound
	}

	selected, err := normalizeSelection(gallery, photoIDs)
	if err != nil {
		return entities.Gallery{}, nil, entities.PriceBreakdown{}, err
	}

	cfg := u.pricing
	if gallery.PackagePhotoCount > 0 {
		cfg.PackagePhotoCount = gallery.PackagePhotoCount
		cfg.ExtraPhotoPrice = gallery.ExtraPhotoPrice
	}
	breakdown, err := pricing.Calculate(len(selected), cfg)
	if err != nil {
		return entities.Gallery{}, nil, entities.PriceBreakdown{}, err
	}
	return gallery, selected, breakdown, nil
}

func normalizeSelection(g entities.Gallery, photoIDs []string) ([]string, error) {
	known := make(map[string]struct{}, len(g.PhotoIDs))
	for _, id := range g.PhotoIDs {
		known[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(photoIDs))
	out := make([]string, 0, len(photoIDs))
	for _, id := range photoIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		if len(known) > 0 {
			if _, ok := known[id]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownPhoto, id)
			}
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// freeSelectionID keys the zero-value order of a within-package selection, so
// submitting the same selection twice settles a single order.
func freeSelectionID(galleryID string, selected []string) string {
	key := galleryID + "|" + strings.Join(selected, ",")
	return "free-" + uuid.NewSHA1(freeSelectionNamespace, []byte(key)).String()
}
