// Package pricing prices client photo selections and booking deposits.
//
// All money is handled as decimal.Decimal and rounded half away from zero to
// two places (half-up for the non-negative amounts priced here).
package pricing

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"photo_studio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var ErrInvalidInput = errors.New("invalid pricing input")

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// DefaultDiscountTiers is the canonical progressive discount: 10% above 10 extra
// photos, 5% above 5.
func DefaultDiscountTiers() []entities.DiscountTier {
	return []entities.DiscountTier{
		{ExtraCountAbove: 10, Rate: decimal.RequireFromString("0.10")},
		{ExtraCountAbove: 5, Rate: decimal.RequireFromString("0.05")},
	}
}

// Validate checks the config and returns a copy with its tiers sorted from the
// highest boundary down.
func Validate(cfg entities.PricingConfig) (entities.PricingConfig, error) {
	if cfg.PackagePhotoCount < 1 {
		return entities.PricingConfig{}, fmt.Errorf("%w: package photo count must be >= 1", ErrInvalidInput)
	}
	if cfg.PackagePrice.IsNegative() || cfg.ExtraPhotoPrice.IsNegative() {
		return entities.PricingConfig{}, fmt.Errorf("%w: prices must be >= 0", ErrInvalidInput)
	}
	if cfg.AdvancePercent.IsNegative() || cfg.AdvancePercent.GreaterThan(hundred) {
		return entities.PricingConfig{}, fmt.Errorf("%w: advance percent must be within 0..100", ErrInvalidInput)
	}

	tiers := make([]entities.DiscountTier, len(cfg.DiscountTiers))
	copy(tiers, cfg.DiscountTiers)
	seen := make(map[int]struct{}, len(tiers))
	for _, t := range tiers {
		if t.ExtraCountAbove < 0 {
			return entities.PricingConfig{}, fmt.Errorf("%w: discount boundary must be >= 0", ErrInvalidInput)
		}
		if t.Rate.IsNegative() || t.Rate.GreaterThan(one) {
			return entities.PricingConfig{}, fmt.Errorf("%w: discount rate must be within 0..1", ErrInvalidInput)
		}
		if _, dup := seen[t.ExtraCountAbove]; dup {
			return entities.PricingConfig{}, fmt.Errorf("%w: duplicate discount boundary %d", ErrInvalidInput, t.ExtraCountAbove)
		}
		seen[t.ExtraCountAbove] = struct{}{}
	}
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].ExtraCountAbove > tiers[j].ExtraCountAbove
	})
	for i, t := range tiers {
		lower := decimal.Zero
		if i+1 < len(tiers) {
			lower = tiers[i+1].Rate
		}
		// Crossing a boundary must never make the extra amount cheaper.
		b := decimal.NewFromInt(int64(t.ExtraCountAbove))
		if b.Add(one).Mul(one.Sub(t.Rate)).LessThan(b.Mul(one.Sub(lower))) {
			return entities.PricingConfig{}, fmt.Errorf("%w: discount above %d extra photos lowers the total", ErrInvalidInput, t.ExtraCountAbove)
		}
	}
	cfg.DiscountTiers = tiers
	return cfg, nil
}

// Calculate prices a selection of selectedCount photos.
//
// Selections within the package are free (the package was paid at booking).
// Beyond it every extra photo costs ExtraPhotoPrice, and a single discount tier
// applies: the highest boundary strictly exceeded by the extra count.
func Calculate(selectedCount int, cfg entities.PricingConfig) (entities.PriceBreakdown, error) {
	if selectedCount < 0 {
		return entities.PriceBreakdown{}, fmt.Errorf("%w: selected count must be >= 0", ErrInvalidInput)
	}
	cfg, err := Validate(cfg)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	if selectedCount <= cfg.PackagePhotoCount {
		return entities.PriceBreakdown{
			SelectedCount:    selectedCount,
			IncludedCount:    selectedCount,
			ExtraGrossAmount: decimal.Zero,
			DiscountRate:     decimal.Zero,
			DiscountAmount:   decimal.Zero,
			ExtraNetAmount:   decimal.Zero,
			TotalDue:         decimal.Zero,
			IsFreeTier:       true,
		}, nil
	}

	extra := selectedCount - cfg.PackagePhotoCount
	gross := decimal.NewFromInt(int64(extra)).Mul(cfg.ExtraPhotoPrice).Round(moneyPlaces)
	rate := discountRateFor(extra, cfg.DiscountTiers)
	discount := gross.Mul(rate).Round(moneyPlaces)
	net := gross.Sub(discount)

	return entities.PriceBreakdown{
		SelectedCount:    selectedCount,
		IncludedCount:    cfg.PackagePhotoCount,
		ExtraCount:       extra,
		ExtraGrossAmount: gross,
		DiscountRate:     rate,
		DiscountAmount:   discount,
		ExtraNetAmount:   net,
		TotalDue:         net,
	}, nil
}

// tiers must be sorted highest boundary first.
func discountRateFor(extra int, tiers []entities.DiscountTier) decimal.Decimal {
	for _, t := range tiers {
		if extra > t.ExtraCountAbove {
			return t.Rate
		}
	}
	return decimal.Zero
}

// Deposit returns the advance payment charged when a session is booked.
func Deposit(sessionPrice, advancePercent decimal.Decimal) (decimal.Decimal, error) {
	if sessionPrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: session price must be >= 0", ErrInvalidInput)
	}
	if advancePercent.IsNegative() || advancePercent.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("%w: advance percent must be within 0..100", ErrInvalidInput)
	}
	return sessionPrice.Mul(advancePercent).Div(hundred).Round(moneyPlaces), nil
}

// ParseAmount converts a client-supplied amount into money, rejecting negative
// and non-finite values.
func ParseAmount(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%w: amount must be finite", ErrInvalidInput)
	}
	if v < 0 {
		return decimal.Zero, fmt.Errorf("%w: amount must be >= 0", ErrInvalidInput)
	}
	return decimal.NewFromFloat(v).Round(moneyPlaces), nil
}
