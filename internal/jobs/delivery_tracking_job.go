package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryTrackingJob drives the delivery simulation. On every tick each
// in-flight order advances one step (Preparing -> OnTheWay -> Delivered),
// so a fresh order reaches Delivered after two ticks.
type DeliveryTrackingJob struct {
	handler     commands.AdvanceDeliveriesCommandHandler
	cron        *cron.Cron
	tickSeconds int
	logger      *slog.Logger
}

// NewDeliveryTrackingJob creates the delivery tracking job with the given
// tick interval in seconds.
func NewDeliveryTrackingJob(
	handler commands.AdvanceDeliveriesCommandHandler,
	tickSeconds int,
	logger *slog.Logger,
) *DeliveryTrackingJob {
	return &DeliveryTrackingJob{
		handler:     handler,
		cron:        cron.New(cron.WithSeconds()),
		tickSeconds: tickSeconds,
		logger:      logger.With("component", "delivery_tracking_job"),
	}
}

// Start begins the delivery tracking job at the configured interval.
func (j *DeliveryTrackingJob) Start() error {
	spec := fmt.Sprintf("*/%d * * * * *", j.tickSeconds)
	_, err := j.cron.AddFunc(spec, func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery tracking job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery tracking job started",
		"tickSeconds", j.tickSeconds)
	return nil
}

// Stop stops the delivery tracking job.
func (j *DeliveryTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery tracking job stopped")
}
