package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"
)

const notificationTimeout = 10 * time.Second

// PaymentReconciler applies the side effects of a terminal payment.
//
// Every write is keyed by ids derived from the gateway transaction id, and the
// order row is written last: replaying an approval finds the booking, gallery
// and order already in place and changes nothing. The confirmation is sent only
// by the call that actually flipped the order to paid.
type PaymentReconciler struct {
	bookings  interfaces.IBookingRepository
	galleries interfaces.IGalleryRepository
	orders    interfaces.IOrderRepository
	notifier  interfaces.INotifier
	pricing   entities.PricingConfig

	inflight sync.WaitGroup
}

var _ interfaces.IPaymentReconciler = (*PaymentReconciler)(nil)

func NewPaymentReconciler(bookings interfaces.IBookingRepository, galleries interfaces.IGalleryRepository, orders interfaces.IOrderRepository, notifier interfaces.INotifier, pricing entities.PricingConfig) *PaymentReconciler {
	return &PaymentReconciler{
		bookings:  bookings,
		galleries: galleries,
		orders:    orders,
		notifier:  notifier,
		pricing:   pricing,
	}
}

func (r *PaymentReconciler) Approve(ctx context.Context, a entities.PaymentAttempt) error {
	if a.ExternalID == "" {
		return errors.New("approve: attempt has no external id")
	}
	log.Printf("[payment][reconciler] approve start attempt_id=%s external_id=%s kind=%s", a.ID, a.ExternalID, a.Kind)

	switch a.Kind {
	case entities.AttemptKindDeposit:
		return r.approveDeposit(ctx, a)
	case entities.AttemptKindSelection:
		return r.approveSelection(ctx, a)
	default:
		return fmt.Errorf("approve: unknown attempt kind %q", a.Kind)
	}
}

func (r *PaymentReconciler) approveDeposit(ctx context.Context, a entities.PaymentAttempt) error {
	if a.Booking == nil {
		return errors.New("approve: deposit attempt without booking draft")
	}
	now := time.Now().UTC()
	draft := a.Booking

	booking, created, err := r.bookings.Create(ctx, entities.Booking{
		ID:                entities.BookingIDFor(a.ExternalID),
		ClientName:        draft.ClientName,
		ClientEmail:       draft.ClientEmail,
		ClientPhone:       draft.ClientPhone,
		SessionType:       draft.SessionType,
		SessionDate:       draft.SessionDate,
		SessionPrice:      draft.SessionPrice,
		DepositAmount:     a.Amount,
		Status:            entities.BookingStatusConfirmed,
		PaymentExternalID: a.ExternalID,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return fmt.Errorf("approve: create booking: %w", err)
	}
	if !created {
		log.Printf("[payment][reconciler] booking already exists booking_id=%s", booking.ID)
	}

	gallery, _, err := r.galleries.Create(ctx, entities.Gallery{
		ID:                entities.GalleryIDFor(booking.ID),
		BookingID:         booking.ID,
		Title:             fmt.Sprintf("%s - %s", draft.SessionType, draft.ClientName),
		ClientEmail:       draft.ClientEmail,
		PackagePhotoCount: r.pricing.PackagePhotoCount,
		ExtraPhotoPrice:   r.pricing.ExtraPhotoPrice,
		Status:            entities.GalleryStatusAwaitingSelection,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return fmt.Errorf("approve: create gallery: %w", err)
	}

	order, applied, err := r.orders.Upsert(ctx, entities.Order{
		ExternalID:    a.ExternalID,
		AttemptID:     a.ID,
		BookingID:     booking.ID,
		GalleryID:     gallery.ID,
		ClientEmail:   draft.ClientEmail,
		TotalAmount:   a.Amount,
		Status:        entities.OrderStatusPaid,
		PaymentMethod: "pix",
		Metadata: map[string]string{
			"kind":          string(a.Kind),
			"session_price": draft.SessionPrice.StringFixed(2),
			"deposit":       a.Amount.StringFixed(2),
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("approve: upsert order: %w", err)
	}
	if !applied {
		log.Printf("[payment][reconciler] order already settled external_id=%s status=%s", order.ExternalID, order.Status)
		return nil
	}

	log.Printf("[payment][reconciler] deposit approved booking_id=%s gallery_id=%s external_id=%s", booking.ID, gallery.ID, a.ExternalID)
	r.notify(ctx, entities.Notification{
		Kind:    entities.NotificationBookingConfirmed,
		To:      draft.ClientEmail,
		Subject: "Sua sessão está confirmada",
		Data: map[string]string{
			"client_name":  draft.ClientName,
			"booking_id":   booking.ID,
			"gallery_id":   gallery.ID,
			"session_type": draft.SessionType,
			"session_date": draft.SessionDate.Format(time.RFC3339),
			"deposit":      a.Amount.StringFixed(2),
		},
		OccurredAt: now,
	})
	return nil
}

func (r *PaymentReconciler) approveSelection(ctx context.Context, a entities.PaymentAttempt) error {
	if a.Selection == nil {
		return errors.New("approve: selection attempt without selection draft")
	}
	now := time.Now().UTC()
	sel := a.Selection

	metadata := breakdownMetadata(a.Kind, sel.Breakdown)
	gallery, err := r.galleries.RecordSelection(ctx, sel.GalleryID, a.ExternalID, sel.SelectedPhotoIDs)
	superseded := errors.Is(err, entities.ErrSelectionAlreadyRecorded)
	if err != nil && !superseded {
		return fmt.Errorf("approve: record selection: %w", err)
	}
	if gallery.ID == "" {
		return fmt.Errorf("approve: %w", ErrGalleryNotFound)
	}
	if superseded {
		// the first recorded selection stays; this payment is kept as a paid order
		log.Printf("[payment][reconciler] selection superseded gallery_id=%s recorded_payment=%s external_id=%s", gallery.ID, gallery.SelectionPaymentID, a.ExternalID)
		metadata["selection_status"] = "superseded"
		metadata["recorded_payment_id"] = gallery.SelectionPaymentID
	}

	order, applied, err := r.orders.Upsert(ctx, entities.Order{
		ExternalID:       a.ExternalID,
		AttemptID:        a.ID,
		BookingID:        gallery.BookingID,
		GalleryID:        gallery.ID,
		ClientEmail:      a.PayerEmail,
		SelectedPhotoIDs: sel.SelectedPhotoIDs,
		TotalAmount:      a.Amount,
		Status:           entities.OrderStatusPaid,
		PaymentMethod:    paymentMethodFor(a),
		Metadata:         metadata,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        now,
	})
	if err != nil {
		return fmt.Errorf("approve: upsert order: %w", err)
	}
	if !applied {
		log.Printf("[payment][reconciler] order already settled external_id=%s status=%s", order.ExternalID, order.Status)
		return nil
	}
	if superseded {
		return nil
	}

	log.Printf("[payment][reconciler] selection approved gallery_id=%s photos=%d external_id=%s", gallery.ID, len(sel.SelectedPhotoIDs), a.ExternalID)
	r.notify(ctx, entities.Notification{
		Kind:    entities.NotificationSelectionPaid,
		To:      a.PayerEmail,
		Subject: "Recebemos sua seleção de fotos",
		Data: map[string]string{
			"gallery_id": gallery.ID,
			"selected":   strconv.Itoa(len(sel.SelectedPhotoIDs)),
			"total":      a.Amount.StringFixed(2),
		},
		OccurredAt: now,
	})
	return nil
}

// Reject marks the pending order as cancelled. No booking or gallery is created.
func (r *PaymentReconciler) Reject(ctx context.Context, a entities.PaymentAttempt) error {
	if a.ExternalID == "" {
		return errors.New("reject: attempt has no external id")
	}
	now := time.Now().UTC()
	existing, err := r.orders.GetByExternalID(ctx, a.ExternalID)
	if err != nil {
		return fmt.Errorf("reject: load order: %w", err)
	}
	cancelled := existing
	if cancelled.ExternalID == "" {
		cancelled = entities.Order{
			ExternalID:    a.ExternalID,
			AttemptID:     a.ID,
			ClientEmail:   a.PayerEmail,
			TotalAmount:   a.Amount,
			PaymentMethod: paymentMethodFor(a),
			CreatedAt:     a.CreatedAt,
		}
	}
	cancelled.Status = entities.OrderStatusCancelled
	cancelled.UpdatedAt = now
	cancelled.Metadata = mergeMetadata(cancelled.Metadata, map[string]string{
		"kind":           string(a.Kind),
		"gateway_status": string(a.Status),
	})

	order, applied, err := r.orders.Upsert(ctx, cancelled)
	if err != nil {
		return fmt.Errorf("reject: upsert order: %w", err)
	}
	if !applied {
		log.Printf("[payment][reconciler] order already settled external_id=%s status=%s", order.ExternalID, order.Status)
		return nil
	}
	log.Printf("[payment][reconciler] payment rejected attempt_id=%s external_id=%s", a.ID, a.ExternalID)
	return nil
}

// WaitNotifications blocks until every dispatched notification has returned.
func (r *PaymentReconciler) WaitNotifications() {
	r.inflight.Wait()
}

// notify dispatches without blocking the approval; failures are only logged.
func (r *PaymentReconciler) notify(ctx context.Context, n entities.Notification) {
	if r.notifier == nil {
		log.Printf("[payment][reconciler] notifier not configured; skipping kind=%s to=%s", n.Kind, n.To)
		return
	}
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)
		defer cancel()
		if err := r.notifier.Send(sendCtx, n); err != nil {
			log.Printf("[payment][reconciler] notification failed kind=%s to=%s err=%v", n.Kind, n.To, err)
		}
	}()
}

func paymentMethodFor(a entities.PaymentAttempt) string {
	if a.Amount.IsZero() {
		return "package"
	}
	return "pix"
}

func breakdownMetadata(kind entities.AttemptKind, b entities.PriceBreakdown) map[string]string {
	return map[string]string{
		"kind":           string(kind),
		"included_count": strconv.Itoa(b.IncludedCount),
		"extra_count":    strconv.Itoa(b.ExtraCount),
		"extra_gross":    b.ExtraGrossAmount.StringFixed(2),
		"discount_rate":  b.DiscountRate.String(),
		"discount":       b.DiscountAmount.StringFixed(2),
		"total_due":      b.TotalDue.StringFixed(2),
	}
}

func mergeMetadata(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
