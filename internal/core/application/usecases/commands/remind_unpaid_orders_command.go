package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrRemindUnpaidOrdersCommandIsNotConstructed = errors.New(
		"RemindUnpaidOrdersCommand must be created via NewRemindUnpaidOrdersCommand constructor",
	)
)

// RemindUnpaidOrdersCommand represents a sweep over orders that were created
// more than OlderThan ago and are still awaiting payment.
type RemindUnpaidOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemindUnpaidOrdersCommand creates the command with a positive age threshold.
func NewRemindUnpaidOrdersCommand(olderThan time.Duration) (RemindUnpaidOrdersCommand, error) {
	if olderThan <= 0 {
		return RemindUnpaidOrdersCommand{}, errs.NewValueIsRequiredError("olderThan")
	}

	return RemindUnpaidOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemindUnpaidOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimum age an unpaid order must reach before it
// is eligible for a reminder.
func (c RemindUnpaidOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
