package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/ports"
)

// RemindUnpaidOrdersCommandHandler sends payment reminders for stale unpaid
// orders. The sweep reads its candidates in one transaction, then notifies
// outside of it; a reminder that fails to send is logged and skipped so one
// bad address never stops the rest of the sweep.
type RemindUnpaidOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRemindUnpaidOrdersCommandHandler creates a handler for reminder sweeps.
func NewRemindUnpaidOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RemindUnpaidOrdersCommandHandler {
	return RemindUnpaidOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "remind_unpaid_orders_handler"),
	}
}

// Handle processes the sweep.
func (h *RemindUnpaidOrdersCommandHandler) Handle(ctx context.Context, cmd RemindUnpaidOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unpaid, err := uow.OrderRepository().GetAllUnpaidBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range unpaid {
		if notifyErr := h.notifier.SendPaymentReminder(ctx, aggregate); notifyErr != nil {
			h.logger.WarnContext(ctx, "payment reminder notification failed",
				"order_id", aggregate.ID().String(), "error", notifyErr)
		}
	}

	return nil
}
