package jobs

import (
	"context"
	"log/slog"

	"crumbsy/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob sweeps the open board every hour and cancels posted orders
// whose expected delivery date has passed. An order nobody took before its
// date cannot be fulfilled anymore.
type StaleOrderJob struct {
	handler commands.CancelExpiredOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderJob creates the hourly stale-order sweep.
func NewStaleOrderJob(handler commands.CancelExpiredOrdersCommandHandler, logger *slog.Logger) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_job"),
	}
}

// Start begins the sweep, running at the top of every hour.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelExpiredOrdersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed to build command", "error", cmdErr)
			return
		}

		swept, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", handleErr)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Stale order sweep cancelled expired orders", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running hourly)")
	return nil
}

// Stop stops the stale order sweep.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
