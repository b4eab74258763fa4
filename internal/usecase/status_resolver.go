package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"
)

// ErrTransientNetwork marks status lookups that failed on every source and
// should simply be retried on the next tick.
var ErrTransientNetwork = errors.New("transient network failure")

// StatusResolver answers "what is the status of this transaction?" with a fixed
// precedence: the gateway first, then the local order record (which webhooks
// may have updated out-of-band). The first terminal answer wins.
type StatusResolver struct {
	gateway interfaces.IPaymentGateway
	orders  interfaces.IOrderRepository
}

var _ interfaces.IStatusResolver = (*StatusResolver)(nil)

func NewStatusResolver(gateway interfaces.IPaymentGateway, orders interfaces.IOrderRepository) *StatusResolver {
	return &StatusResolver{gateway: gateway, orders: orders}
}

func (r *StatusResolver) Resolve(ctx context.Context, externalID string) (entities.PaymentStatus, error) {
	var gatewayErr error
	if r.gateway == nil {
		gatewayErr = ErrPaymentGatewayNotConfigured
	} else {
		p, err := r.gateway.GetPayment(ctx, externalID)
		if err == nil {
			status := entities.NormalizeGatewayStatus(p.Status)
			if status.IsTerminal() {
				return status, nil
			}
		} else {
			gatewayErr = err
			log.Printf("[payment][resolver] gateway lookup failed external_id=%s err=%v", externalID, err)
		}
	}

	var orderErr error
	if r.orders == nil {
		orderErr = errors.New("order repository not configured")
	} else {
		o, err := r.orders.GetByExternalID(ctx, externalID)
		if err != nil {
			orderErr = err
			log.Printf("[payment][resolver] order lookup failed external_id=%s err=%v", externalID, err)
		} else if o.ExternalID != "" {
			if status := o.Status.PaymentStatus(); status.IsTerminal() {
				return status, nil
			}
		}
	}

	if gatewayErr != nil && orderErr != nil {
		return "", fmt.Errorf("%w: gateway: %v; orders: %v", ErrTransientNetwork, gatewayErr, orderErr)
	}
	return entities.PaymentStatusPending, nil
}
