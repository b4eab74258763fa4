package response

import (
	"testing"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromPriceBreakdown_FormatsMoney(t *testing.T) {
	resp := FromPriceBreakdown(entities.PriceBreakdown{
		SelectedCount:    16,
		IncludedCount:    10,
		ExtraCount:       6,
		ExtraGrossAmount: decimal.RequireFromString("180"),
		DiscountRate:     decimal.RequireFromString("0.05"),
		DiscountAmount:   decimal.RequireFromString("9"),
		ExtraNetAmount:   decimal.RequireFromString("171"),
		TotalDue:         decimal.RequireFromString("171"),
	})

	if resp.TotalDue != "171.00" || resp.DiscountRate != "0.05" || resp.ExtraGrossAmount != "180.00" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFromCheckoutResult(t *testing.T) {
	attempt := entities.PaymentAttempt{
		ID:        "att-1",
		Amount:    decimal.RequireFromString("297"),
		Selection: &entities.SelectionDraft{GalleryID: "gal-1"},
	}
	resp := FromCheckoutResult(usecase.CheckoutResult{Attempt: &attempt})
	if resp.Payment == nil || resp.Order != nil {
		t.Fatalf("expected payment only, got %+v", resp)
	}
	if resp.Payment.GalleryID != "gal-1" || resp.Payment.Amount != "297.00" {
		t.Fatalf("unexpected payment: %+v", resp.Payment)
	}

	order := entities.Order{ExternalID: "free-1", Status: entities.OrderStatusPaid}
	resp = FromCheckoutResult(usecase.CheckoutResult{Order: &order})
	if resp.Order == nil || resp.Payment != nil || resp.Order.TotalAmount != "0.00" {
		t.Fatalf("expected settled order, got %+v", resp)
	}
}

func TestFromBooking_DerivesGalleryID(t *testing.T) {
	b := entities.Booking{ID: entities.BookingIDFor("123")}
	resp := FromBooking(b)
	if resp.GalleryID != entities.GalleryIDFor(b.ID) {
		t.Fatalf("expected derived gallery id, got %s", resp.GalleryID)
	}
}

func TestFromGallery_EmptyListsAreArrays(t *testing.T) {
	resp := FromGallery(entities.Gallery{ID: "g1"})
	if resp.PhotoIDs == nil || resp.SelectedPhotoIDs == nil {
		t.Fatalf("expected empty slices, got %+v", resp)
	}
}
