package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewOrdersPlacedTotal returns a Prometheus counter for the number of orders placed
func NewOrdersPlacedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders placed",
	})
}

// NewPaymentsFailedTotal returns a Prometheus counter for the number of failed payment settlements
func NewPaymentsFailedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payments_failed_total",
		Help: "Total number of failed payment settlements",
	})
}

// NewVehicleAssignmentsTotal returns a Prometheus counter for the number of completed vehicle assignments
func NewVehicleAssignmentsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vehicle_assignments_total",
		Help: "Total number of completed vehicle assignments",
	})
}

// NewAssignmentConflictsTotal returns a Prometheus counter for the number of lost vehicle reservation races
func NewAssignmentConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_conflicts_total",
		Help: "Total number of lost vehicle reservation races",
	})
}
