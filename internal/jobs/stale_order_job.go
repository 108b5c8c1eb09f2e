package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob cancels Pending orders that sat past their TTL without being
// packed. Runs every minute; a TTL of zero disables the job.
type StaleOrderJob struct {
	uowFactory ports.UnitOfWorkFactory
	handler    commands.CancelOrderCommandHandler
	ttlMinutes int
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleOrderJob creates a job that sweeps stale Pending orders.
// ttlMinutes is how long an order may stay Pending before it is cancelled.
func NewStaleOrderJob(
	uowFactory ports.UnitOfWorkFactory,
	handler commands.CancelOrderCommandHandler,
	ttlMinutes int,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		uowFactory: uowFactory,
		handler:    handler,
		ttlMinutes: ttlMinutes,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order sweep to run every minute.
func (j *StaleOrderJob) Start() error {
	ctx := context.Background()

	if j.ttlMinutes <= 0 {
		j.logger.InfoContext(ctx, "Stale order job disabled (TTL is zero)")
		return nil
	}

	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.sweep(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Stale order job started (running every minute)", "ttl_minutes", j.ttlMinutes)
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

// sweep cancels every Pending order older than the TTL. Each order is
// cancelled in its own transaction, so one failure does not block the rest.
func (j *StaleOrderJob) sweep(ctx context.Context) {
	uow := j.uowFactory.Create()

	staleOrders, err := uow.OrderRepository().GetAllPendingOlderThan(ctx, j.ttlMinutes)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		return
	}

	for _, staleOrder := range staleOrders {
		cmd, err := commands.NewCancelOrderCommand(staleOrder.ID(), "Cancelled automatically after pending timeout")
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build cancel command", "order_id", staleOrder.ID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Failed to cancel stale order", "order_id", staleOrder.ID().String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Cancelled stale order", "order_id", staleOrder.ID().String())
	}
}
