// Package notifications provides the outbound notification adapter.
// The current implementation only logs; a real mail or messaging
// integration can replace it behind the same port.
package notifications

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
)

// LogNotifier implements the Notifier port by writing structured log
// records instead of sending anything.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs every send.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// SendOrderConfirmation logs the confirmation that would be sent.
func (n *LogNotifier) SendOrderConfirmation(ctx context.Context, aggregate *order.Order) error {
	n.logger.InfoContext(ctx, "order confirmation",
		"order_id", aggregate.ID().String(),
		"user_id", aggregate.UserID().String(),
		"total", aggregate.TotalPrice().String(),
	)
	return nil
}

// SendPaymentReminder logs the reminder that would be sent.
func (n *LogNotifier) SendPaymentReminder(ctx context.Context, aggregate *order.Order) error {
	n.logger.InfoContext(ctx, "payment reminder",
		"order_id", aggregate.ID().String(),
		"user_id", aggregate.UserID().String(),
		"total", aggregate.TotalPrice().String(),
		"created_at", aggregate.CreatedAt(),
	)
	return nil
}
