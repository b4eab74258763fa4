package usecase

import (
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

func testPricing() entities.PricingConfig {
	return entities.PricingConfig{
		PackagePhotoCount: 10,
		PackagePrice:      decimal.RequireFromString("450.00"),
		ExtraPhotoPrice:   decimal.RequireFromString("30.00"),
		DiscountTiers:     pricing.DefaultDiscountTiers(),
		AdvancePercent:    decimal.NewFromInt(30),
	}
}

func fastPolicy(maxAttempts uint) PollPolicy {
	return PollPolicy{
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
		MaxAttempts:     maxAttempts,
		Timeout:         5 * time.Second,
	}
}

func depositAttempt() entities.PaymentAttempt {
	return entities.PaymentAttempt{
		ID:         "att-1",
		ExternalID: "123",
		Kind:       entities.AttemptKindDeposit,
		Status:     entities.PaymentStatusPending,
		State:      entities.PollStateAwaitingPayment,
		Amount:     decimal.RequireFromString("240.00"),
		PayerEmail: "ana@test.com",
		Booking: &entities.BookingDraft{
			ClientName:   "Ana",
			ClientEmail:  "ana@test.com",
			SessionType:  "Ensaio gestante",
			SessionDate:  time.Date(2026, 11, 20, 14, 0, 0, 0, time.UTC),
			SessionPrice: decimal.RequireFromString("800.00"),
		},
	}
}
