package jobs

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AbandonedOrderJob manages the scheduled cancellation of stale orders.
// Runs every minute and cancels pending orders older than the configured age.
type AbandonedOrderJob struct {
	handler      commands.CancelAbandonedOrdersCommandHandler
	abandonAfter time.Duration
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewAbandonedOrderJob creates a job that sweeps abandoned orders.
// abandonAfter is the age past which a pending order counts as abandoned.
func NewAbandonedOrderJob(
	handler commands.CancelAbandonedOrdersCommandHandler,
	abandonAfter time.Duration,
	logger *slog.Logger,
) *AbandonedOrderJob {
	return &AbandonedOrderJob{
		handler:      handler,
		abandonAfter: abandonAfter,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "abandoned_order_job"),
	}
}

// Start begins the sweep job to run at the top of every minute.
func (j *AbandonedOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelAbandonedOrdersCommand(time.Now().Add(-j.abandonAfter))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Abandoned order sweep misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Abandoned order sweep failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled abandoned orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned order job started (running every minute)",
		"abandonAfter", j.abandonAfter)
	return nil
}

// Stop stops the sweep job.
func (j *AbandonedOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned order job stopped")
}
