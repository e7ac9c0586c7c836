package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// Notifier is the best-effort notification sink. Implementations may fail;
// callers always recover such failures locally (log and continue) and never
// let them affect the surrounding operation.
type Notifier interface {
	// SendOrderConfirmation dispatches an order confirmation after the
	// order has been durably persisted.
	SendOrderConfirmation(ctx context.Context, aggregate *order.Order) error

	// SendPaymentReminder nudges the customer about an order still
	// awaiting payment.
	SendPaymentReminder(ctx context.Context, aggregate *order.Order) error
}
