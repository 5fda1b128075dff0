package logistics

import (
	"context"

	"agrilink-fulfillment/internal/domain"
)

// fleet is the vehicle pool the assigner draws from. Reserve is the only
// path from available to unavailable and reports whether this caller won.
type fleet interface {
	ListAvailable(minCapacityKg float64) []domain.Vehicle
	Reserve(id string) bool
	MarkAvailable(id string)
}

// orderLedger is the lifecycle-facing slice of the order service.
type orderLedger interface {
	Get(ctx context.Context, id string) (domain.Order, error)
	Transition(ctx context.Context, id string, status domain.OrderStatus) error
}

// assignmentStore persists the assignment on the order record.
type assignmentStore interface {
	AttachAssignment(id string, a domain.LogisticsAssignment) bool
	DetachAssignment(id string) bool
	SetAssignmentStatus(id string, status domain.AssignmentStatus) bool
}

// counter abstracts a metrics counter.
type counter interface {
	Inc()
}
