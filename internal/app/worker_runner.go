package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/dig"

	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
	"agrilink-fulfillment/internal/store"
)

// WorkerRunner runs the periodic fleet release sweep
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the sweep loop using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	orders *store.OrderStore,
	fleet *store.FleetRegistry,
	interval releaseInterval,
	logger logx.Logger,
) error {
	logger.Info("fleet release worker started",
		logx.Duration("interval", time.Duration(interval)))

	ticker := time.NewTicker(time.Duration(interval))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			releaseDeliveredVehicles(orders, fleet, logger)
		}
	}
}

// releaseDeliveredVehicles frees vehicles stuck on delivered orders, e.g.
// after a crash between the delivery transition and its release hook. A
// vehicle held by a live assignment is never touched even if an older
// delivered order still references it.
func releaseDeliveredVehicles(orders *store.OrderStore, fleet *store.FleetRegistry, logger logx.Logger) {
	all := orders.List()

	held := make(map[string]struct{})
	for _, o := range all {
		if o.Assignment == nil {
			continue
		}
		if o.Status == domain.StatusAssigned || o.Status == domain.StatusInTransit {
			held[o.Assignment.VehicleID] = struct{}{}
		}
	}

	for _, o := range all {
		if o.Status != domain.StatusDelivered || o.Assignment == nil {
			continue
		}
		if _, busy := held[o.Assignment.VehicleID]; busy {
			continue
		}
		v, ok := fleet.Get(o.Assignment.VehicleID)
		if !ok || v.IsAvailable {
			continue
		}
		fleet.MarkAvailable(v.ID)
		logger.Info("vehicle released by sweep",
			logx.String("vehicle_id", v.ID), logx.String("order_id", o.ID))
	}
}
