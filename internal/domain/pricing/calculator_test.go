package pricing

import (
	"errors"
	"math"
	"testing"

	"photo_studio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func studioConfig() entities.PricingConfig {
	return entities.PricingConfig{
		PackagePhotoCount: 10,
		PackagePrice:      decimal.RequireFromString("450.00"),
		ExtraPhotoPrice:   decimal.RequireFromString("30.00"),
		DiscountTiers:     DefaultDiscountTiers(),
		AdvancePercent:    decimal.NewFromInt(30),
	}
}

func TestCalculate_Examples(t *testing.T) {
	cases := []struct {
		name     string
		selected int
		extra    int
		gross    string
		discount string
		total    string
		free     bool
	}{
		{name: "within package", selected: 10, total: "0", gross: "0", discount: "0", free: true},
		{name: "empty selection", selected: 0, total: "0", gross: "0", discount: "0", free: true},
		{name: "no discount", selected: 15, extra: 5, gross: "150", discount: "0", total: "150"},
		{name: "five percent tier", selected: 16, extra: 6, gross: "180", discount: "9", total: "171"},
		{name: "ten percent tier", selected: 21, extra: 11, gross: "330", discount: "33", total: "297"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Calculate(tc.selected, studioConfig())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.IsFreeTier != tc.free {
				t.Fatalf("expected free=%v, got %v", tc.free, got.IsFreeTier)
			}
			if got.ExtraCount != tc.extra {
				t.Fatalf("expected extra %d, got %d", tc.extra, got.ExtraCount)
			}
			if !got.ExtraGrossAmount.Equal(decimal.RequireFromString(tc.gross)) {
				t.Fatalf("expected gross %s, got %s", tc.gross, got.ExtraGrossAmount)
			}
			if !got.DiscountAmount.Equal(decimal.RequireFromString(tc.discount)) {
				t.Fatalf("expected discount %s, got %s", tc.discount, got.DiscountAmount)
			}
			if !got.TotalDue.Equal(decimal.RequireFromString(tc.total)) {
				t.Fatalf("expected total %s, got %s", tc.total, got.TotalDue)
			}
			if got.TotalDue.StringFixed(2) != decimal.RequireFromString(tc.total).StringFixed(2) {
				t.Fatalf("total not representable at 2 places: %s", got.TotalDue)
			}
		})
	}
}

func TestCalculate_ExtraCountAndMonotonicity(t *testing.T) {
	cfg := studioConfig()
	prev := decimal.Zero
	for n := 0; n <= 60; n++ {
		got, err := Calculate(n, cfg)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		wantExtra := n - cfg.PackagePhotoCount
		if wantExtra < 0 {
			wantExtra = 0
		}
		if got.ExtraCount != wantExtra {
			t.Fatalf("n=%d: expected extra %d, got %d", n, wantExtra, got.ExtraCount)
		}
		if n <= cfg.PackagePhotoCount && (!got.IsFreeTier || !got.TotalDue.IsZero()) {
			t.Fatalf("n=%d: expected free tier, got %+v", n, got)
		}
		if got.TotalDue.LessThan(prev) {
			t.Fatalf("n=%d: total decreased from %s to %s", n, prev, got.TotalDue)
		}
		if !got.TotalDue.Equal(got.TotalDue.Round(2)) {
			t.Fatalf("n=%d: total has residue: %s", n, got.TotalDue)
		}
		prev = got.TotalDue
	}
}

func TestCalculate_OddPricesRoundToCents(t *testing.T) {
	cfg := studioConfig()
	cfg.ExtraPhotoPrice = decimal.RequireFromString("12.35")
	cfg.DiscountTiers = []entities.DiscountTier{{ExtraCountAbove: 0, Rate: decimal.RequireFromString("0.07")}}

	got, err := Calculate(13, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 x 12.35 = 37.05; 7% = 2.5935 -> 2.59
	if !got.DiscountAmount.Equal(decimal.RequireFromString("2.59")) {
		t.Fatalf("expected discount 2.59, got %s", got.DiscountAmount)
	}
	if got.TotalDue.StringFixed(2) != "34.46" {
		t.Fatalf("expected total 34.46, got %s", got.TotalDue.StringFixed(2))
	}
}

func TestCalculate_TiersOrderIndependent(t *testing.T) {
	cfg := studioConfig()
	cfg.DiscountTiers = []entities.DiscountTier{
		{ExtraCountAbove: 5, Rate: decimal.RequireFromString("0.05")},
		{ExtraCountAbove: 10, Rate: decimal.RequireFromString("0.10")},
	}
	got, err := Calculate(21, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.DiscountRate.Equal(decimal.RequireFromString("0.10")) {
		t.Fatalf("expected highest tier to win, got %s", got.DiscountRate)
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		selected int
		mutate   func(*entities.PricingConfig)
	}{
		{name: "negative selection", selected: -1, mutate: func(*entities.PricingConfig) {}},
		{name: "zero package", selected: 3, mutate: func(c *entities.PricingConfig) { c.PackagePhotoCount = 0 }},
		{name: "negative extra price", selected: 3, mutate: func(c *entities.PricingConfig) { c.ExtraPhotoPrice = decimal.NewFromInt(-1) }},
		{name: "rate above one", selected: 3, mutate: func(c *entities.PricingConfig) {
			c.DiscountTiers = []entities.DiscountTier{{ExtraCountAbove: 1, Rate: decimal.NewFromInt(2)}}
		}},
		{name: "duplicate boundary", selected: 3, mutate: func(c *entities.PricingConfig) {
			c.DiscountTiers = append(c.DiscountTiers, entities.DiscountTier{ExtraCountAbove: 5, Rate: decimal.RequireFromString("0.02")})
		}},
		{name: "tier lowers total", selected: 3, mutate: func(c *entities.PricingConfig) {
			c.DiscountTiers = []entities.DiscountTier{{ExtraCountAbove: 5, Rate: decimal.RequireFromString("0.50")}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := studioConfig()
			tc.mutate(&cfg)
			_, err := Calculate(tc.selected, cfg)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDeposit(t *testing.T) {
	got, err := Deposit(decimal.RequireFromString("799.90"), decimal.NewFromInt(30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringFixed(2) != "239.97" {
		t.Fatalf("expected 239.97, got %s", got.StringFixed(2))
	}

	if _, err := Deposit(decimal.NewFromInt(-1), decimal.NewFromInt(30)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := Deposit(decimal.NewFromInt(100), decimal.NewFromInt(101)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.01} {
		if _, err := ParseAmount(v); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %v, got %v", v, err)
		}
	}
	got, err := ParseAmount(0.1 + 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "0.3" {
		t.Fatalf("expected 0.3, got %s", got)
	}
}
