package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"flowgic/internal/core/application/usecases/commands"
)

// DelayScanJob periodically sweeps in-transit orders whose delivery deadline
// has passed and flags them as delayed. Runs every minute; the sweep is
// idempotent, an already delayed order is not picked up again.
type DelayScanJob struct {
	handler commands.MarkOverdueOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDelayScanJob creates the scheduled overdue-delivery scan.
func NewDelayScanJob(handler commands.MarkOverdueOrdersCommandHandler, logger *slog.Logger) *DelayScanJob {
	return &DelayScanJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delay_scan_job"),
	}
}

// Start begins the delay scan, running at the top of every minute.
func (j *DelayScanJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewMarkOverdueOrdersCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delay scan command construction failed", "error", cmdErr)
			return
		}

		flagged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delay scan failed", "error", handleErr)
			return
		}

		if flagged > 0 {
			j.logger.InfoContext(ctx, "Delay scan flagged overdue orders", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delay scan job started (running every minute)")
	return nil
}

// Stop stops the delay scan job.
func (j *DelayScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delay scan job stopped")
}
