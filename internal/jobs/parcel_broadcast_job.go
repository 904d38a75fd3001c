package jobs

import (
	"context"
	"log/slog"

	"parcelmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ParcelBroadcastJob periodically re-offers parcels that are still waiting
// for a carrier. A parcel stays in the sweep until some carrier accepts it.
type ParcelBroadcastJob struct {
	handler commands.BroadcastPendingParcelsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewParcelBroadcastJob creates a job that broadcasts pending parcels every
// minute.
func NewParcelBroadcastJob(
	handler commands.BroadcastPendingParcelsCommandHandler, logger *slog.Logger,
) *ParcelBroadcastJob {
	return &ParcelBroadcastJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "parcel_broadcast_job"),
	}
}

// Start schedules the broadcast sweep.
func (j *ParcelBroadcastJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewBroadcastPendingParcelsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Parcel broadcast job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Parcel broadcast job started (running every minute)")
	return nil
}

// Stop stops the broadcast job.
func (j *ParcelBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Parcel broadcast job stopped")
}
