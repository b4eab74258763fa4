package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/domain/pricing"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

// Config is the service configuration, read once at startup and injected.
//
// Money values are kept as strings here and parsed into decimals by Pricing so
// that a malformed value is reported with the variable name.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	PackagePhotoCount int    `env:"PRICING_PACKAGE_PHOTO_COUNT" envDefault:"10"`
	PackagePrice      string `env:"PRICING_PACKAGE_PRICE"       envDefault:"0.00"`
	ExtraPhotoPrice   string `env:"PRICING_EXTRA_PHOTO_PRICE"   envDefault:"30.00"`
	DiscountTiers     string `env:"PRICING_DISCOUNT_TIERS"      envDefault:"10:0.10,5:0.05"`
	AdvancePercent    string `env:"PRICING_ADVANCE_PERCENT"     envDefault:"30"`

	Poll PollConfig

	MercadoPagoAccessToken     string        `env:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoNotificationURL string        `env:"MERCADOPAGO_NOTIFICATION_URL"`
	PixExpiration              time.Duration `env:"PIX_EXPIRATION" envDefault:"30m"`
	PaymentGatewayMock         bool          `env:"PAYMENT_GATEWAY_MOCK"`

	DynamoDB DynamoDBConfig
	Tables   TablesConfig

	RedisAddr          string `env:"REDIS_ADDR"          envDefault:"localhost:6379"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB"            envDefault:"0"`
	NotificationsQueue string `env:"NOTIFICATIONS_QUEUE" envDefault:"notifications:email"`
}

// DynamoDBConfig is local-friendly: DynamoDB Local ignores credentials but the
// SDK still requires them.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION"            envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"     envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
}

type TablesConfig struct {
	Orders          string `env:"ORDERS_TABLE"           envDefault:"orders"`
	Bookings        string `env:"BOOKINGS_TABLE"         envDefault:"bookings"`
	Galleries       string `env:"GALLERIES_TABLE"        envDefault:"galleries"`
	PaymentAttempts string `env:"PAYMENT_ATTEMPTS_TABLE" envDefault:"payment_attempts"`
}

// PollConfig bounds the payment status poller.
type PollConfig struct {
	InitialInterval time.Duration `env:"POLL_INITIAL_INTERVAL" envDefault:"3s"`
	MaxInterval     time.Duration `env:"POLL_MAX_INTERVAL"     envDefault:"30s"`
	Multiplier      float64       `env:"POLL_MULTIPLIER"       envDefault:"1.5"`
	MaxAttempts     uint          `env:"POLL_MAX_ATTEMPTS"     envDefault:"120"`
	Timeout         time.Duration `env:"POLL_TIMEOUT"          envDefault:"30m"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Pricing builds and validates the selection pricing policy.
func (c Config) Pricing() (entities.PricingConfig, error) {
	packagePrice, err := parseMoney("PRICING_PACKAGE_PRICE", c.PackagePrice)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	extraPrice, err := parseMoney("PRICING_EXTRA_PHOTO_PRICE", c.ExtraPhotoPrice)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	advance, err := parseMoney("PRICING_ADVANCE_PERCENT", c.AdvancePercent)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	tiers, err := ParseDiscountTiers(c.DiscountTiers)
	if err != nil {
		return entities.PricingConfig{}, err
	}

	return pricing.Validate(entities.PricingConfig{
		PackagePhotoCount: c.PackagePhotoCount,
		PackagePrice:      packagePrice,
		ExtraPhotoPrice:   extraPrice,
		DiscountTiers:     tiers,
		AdvancePercent:    advance,
	})
}

// ParseDiscountTiers parses "above:rate" pairs separated by commas, e.g.
// "10:0.10,5:0.05". An empty string disables discounts.
func ParseDiscountTiers(raw string) ([]entities.DiscountTier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	tiers := make([]entities.DiscountTier, 0, len(parts))
	for _, part := range parts {
		above, rate, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("PRICING_DISCOUNT_TIERS: malformed tier %q", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(above))
		if err != nil {
			return nil, fmt.Errorf("PRICING_DISCOUNT_TIERS: tier %q: %w", part, err)
		}
		r, err := decimal.NewFromString(strings.TrimSpace(rate))
		if err != nil {
			return nil, fmt.Errorf("PRICING_DISCOUNT_TIERS: tier %q: %w", part, err)
		}
		tiers = append(tiers, entities.DiscountTier{ExtraCountAbove: n, Rate: r})
	}
	return tiers, nil
}

func parseMoney(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}
