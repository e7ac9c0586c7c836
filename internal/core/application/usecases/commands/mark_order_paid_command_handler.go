package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// Defaults applied when the payment provider reports partial details.
const (
	defaultPaymentID         = "manual"
	defaultPaymentStatus     = "completed"
	defaultPaymentPayerEmail = "unknown"
)

// MarkOrderPaidCommandHandler records a payment capture on an order.
// Marking an already paid order again is allowed and overwrites the stored
// payment result with the newer details; a delivered order cannot be paid.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderPaidCommandHandler creates a handler for payment confirmations.
func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command inside one transaction.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := buildPaymentResult(cmd.Details(), cmd.AccountEmail(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkPaid(result, now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildPaymentResult merges provider details with defaults so that manual
// and provider-driven payments produce the same shape of record.
func buildPaymentResult(details PaymentDetails, accountEmail string, now time.Time) (order.PaymentResult, error) {
	id := details.ID
	if id == "" {
		id = defaultPaymentID
	}

	status := details.Status
	if status == "" {
		status = defaultPaymentStatus
	}

	updateTime := details.UpdateTime
	if updateTime == "" {
		updateTime = now.Format(time.RFC3339)
	}

	payerEmail := details.PayerEmail
	if payerEmail == "" {
		payerEmail = accountEmail
	}
	if payerEmail == "" {
		payerEmail = defaultPaymentPayerEmail
	}

	return order.NewPaymentResult(id, status, updateTime, payerEmail)
}
