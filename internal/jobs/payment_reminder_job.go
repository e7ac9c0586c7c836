package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentReminderJob manages the scheduled payment reminder sweep.
// Runs hourly to nudge customers whose orders were created but never paid.
type PaymentReminderJob struct {
	handler     commands.RemindUnpaidOrdersCommandHandler
	reminderAge time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewPaymentReminderJob creates a new job for sending payment reminders.
// reminderAge is how old an unpaid order must be before it gets a reminder.
func NewPaymentReminderJob(
	handler commands.RemindUnpaidOrdersCommandHandler,
	reminderAge time.Duration,
	logger *slog.Logger,
) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler:     handler,
		reminderAge: reminderAge,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "payment_reminder_job"),
	}
}

// Start begins the payment reminder job to run at the top of every hour.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRemindUnpaidOrdersCommand(j.reminderAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Payment reminder job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment reminder job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started (running hourly)")
	return nil
}

// Stop stops the payment reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}
