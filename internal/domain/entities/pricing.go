package entities

import "github.com/shopspring/decimal"

// DiscountTier grants Rate off the extra-photo amount once the number of extra
// photos is strictly greater than ExtraCountAbove.
type DiscountTier struct {
	ExtraCountAbove int             `json:"extra_count_above"`
	Rate            decimal.Decimal `json:"rate"`
}

// PricingConfig is the studio's selection pricing policy.
//
// It is loaded once at startup and injected into the use cases; galleries copy
// PackagePhotoCount and ExtraPhotoPrice when they are created so later policy
// changes do not reprice a client's album.
type PricingConfig struct {
	PackagePhotoCount int             `json:"package_photo_count"`
	PackagePrice      decimal.Decimal `json:"package_price"`
	ExtraPhotoPrice   decimal.Decimal `json:"extra_photo_price"`
	DiscountTiers     []DiscountTier  `json:"discount_tiers"`

	// AdvancePercent is the share of the session price charged as deposit at booking time (0-100).
	AdvancePercent decimal.Decimal `json:"advance_percent"`
}

// PriceBreakdown is the priced result of a photo selection. It is never persisted on its own.
type PriceBreakdown struct {
	SelectedCount    int             `json:"selected_count"`
	IncludedCount    int             `json:"included_count"`
	ExtraCount       int             `json:"extra_count"`
	ExtraGrossAmount decimal.Decimal `json:"extra_gross_amount"`
	DiscountRate     decimal.Decimal `json:"discount_rate"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	ExtraNetAmount   decimal.Decimal `json:"extra_net_amount"`
	TotalDue         decimal.Decimal `json:"total_due"`
	IsFreeTier       bool            `json:"is_free_tier"`
}
