package response

import (
	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase"
)

type PriceBreakdownResponse struct {
	SelectedCount    int    `json:"selected_count" example:"16"`
	IncludedCount    int    `json:"included_count" example:"10"`
	ExtraCount       int    `json:"extra_count" example:"6"`
	ExtraGrossAmount string `json:"extra_gross_amount" example:"180.00"`
	DiscountRate     string `json:"discount_rate" example:"0.05"`
	DiscountAmount   string `json:"discount_amount" example:"9.00"`
	ExtraNetAmount   string `json:"extra_net_amount" example:"171.00"`
	TotalDue         string `json:"total_due" example:"171.00"`
	IsFreeTier       bool   `json:"is_free_tier"`
}

func FromPriceBreakdown(b entities.PriceBreakdown) PriceBreakdownResponse {
	return PriceBreakdownResponse{
		SelectedCount:    b.SelectedCount,
		IncludedCount:    b.IncludedCount,
		ExtraCount:       b.ExtraCount,
		ExtraGrossAmount: b.ExtraGrossAmount.StringFixed(2),
		DiscountRate:     b.DiscountRate.StringFixed(2),
		DiscountAmount:   b.DiscountAmount.StringFixed(2),
		ExtraNetAmount:   b.ExtraNetAmount.StringFixed(2),
		TotalDue:         b.TotalDue.StringFixed(2),
		IsFreeTier:       b.IsFreeTier,
	}
}

// CheckoutResponse carries either the PIX attempt to pay or the order settled
// without payment.
type CheckoutResponse struct {
	Breakdown PriceBreakdownResponse  `json:"breakdown"`
	Payment   *PaymentAttemptResponse `json:"payment,omitempty"`
	Order     *OrderResponse          `json:"order,omitempty"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	resp := CheckoutResponse{Breakdown: FromPriceBreakdown(r.Breakdown)}
	if r.Attempt != nil {
		p := FromPaymentAttempt(*r.Attempt)
		resp.Payment = &p
	}
	if r.Order != nil {
		o := FromOrder(*r.Order)
		resp.Order = &o
	}
	return resp
}
