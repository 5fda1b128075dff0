package logistics

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/geo"
	"agrilink-fulfillment/internal/logx"
)

// minutes of travel per kilometer, a flat estimate rather than a routing result
const minutesPerKm = 2.0

// Assigner matches paid orders to the nearest capacity-feasible vehicle and
// owns the vehicle side of the delivery lifecycle.
type Assigner struct {
	fleet       fleet
	ledger      orderLedger
	orders      assignmentStore
	assignments counter
	conflicts   counter
	logger      logx.Logger
	now         func() time.Time
	newID       func() string
}

// NewAssigner creates and configures a vehicle Assigner.
func NewAssigner(fl fleet, ledger orderLedger, orders assignmentStore,
	assignments, conflicts counter, logger logx.Logger) *Assigner {

	return &Assigner{
		fleet:       fl,
		ledger:      ledger,
		orders:      orders,
		assignments: assignments,
		conflicts:   conflicts,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       func() string { return "LOG-" + uuid.NewString() },
	}
}

// SelectOptimal picks the available vehicle with capacity for weightKg that
// is nearest to pickup. Capacity is a hard filter, distance the only ranking
// signal; ties keep the first candidate in registry order. The second return
// is false when no vehicle qualifies.
func (a *Assigner) SelectOptimal(weightKg float64, pickup domain.Coordinate) (domain.Vehicle, bool) {
	candidates := a.fleet.ListAvailable(weightKg)
	if len(candidates) == 0 {
		return domain.Vehicle{}, false
	}

	best := candidates[0]
	bestDist := geo.Distance(best.CurrentLocation, pickup)
	for _, v := range candidates[1:] {
		if d := geo.Distance(v.CurrentLocation, pickup); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best, true
}

// Assign books a vehicle for a paid order: pickup is the seller location,
// delivery the buyer location. The chosen vehicle is reserved atomically;
// losing the reservation race moves on to the next candidate until the pool
// is exhausted. On success the assignment is attached to the order and the
// order moves to assigned.
func (a *Assigner) Assign(ctx context.Context, orderID string) (domain.LogisticsAssignment, error) {
	o, err := a.ledger.Get(ctx, orderID)
	if err != nil {
		return domain.LogisticsAssignment{}, err
	}
	if o.Assignment != nil {
		return domain.LogisticsAssignment{}, apperr.ErrConflict
	}
	if o.Status != domain.StatusPaid {
		return domain.LogisticsAssignment{}, apperr.ErrConflict
	}

	pickup := o.SellerCoordinates
	vehicle, err := a.reserveNearest(o.TotalWeight, pickup)
	if err != nil {
		a.logger.Warn("no vehicle available",
			logx.String("order_id", orderID),
			logx.Float64("weight_kg", o.TotalWeight),
		)
		return domain.LogisticsAssignment{}, err
	}

	distance := geo.Distance(pickup, o.BuyerCoordinates)
	etaMin := int(math.Round(distance * minutesPerKm))
	assignedAt := a.now()

	assignment := domain.LogisticsAssignment{
		ID:        a.newID(),
		OrderID:   orderID,
		VehicleID: vehicle.ID,
		DriverID:  vehicle.DriverID,
		Pickup: domain.Stop{
			Coordinates: pickup,
			Address:     o.SellerAddress,
		},
		Delivery: domain.Stop{
			Coordinates: o.BuyerCoordinates,
			Address:     o.BuyerAddress,
		},
		DistanceKm:        distance,
		EstimatedTimeMin:  etaMin,
		Cost:              distance * vehicle.CostPerKm,
		Status:            domain.AssignmentAssigned,
		AssignedAt:        assignedAt,
		EstimatedDelivery: assignedAt.Add(time.Duration(etaMin) * time.Minute),
	}

	if !a.orders.AttachAssignment(orderID, assignment) {
		a.fleet.MarkAvailable(vehicle.ID)
		return domain.LogisticsAssignment{}, apperr.ErrOrderNotFound
	}
	if err := a.ledger.Transition(ctx, orderID, domain.StatusAssigned); err != nil {
		// undo the booking completely so the order stays assignable
		a.orders.DetachAssignment(orderID)
		a.fleet.MarkAvailable(vehicle.ID)
		return domain.LogisticsAssignment{}, err
	}

	if a.assignments != nil {
		a.assignments.Inc()
	}
	a.logger.Info("vehicle assigned",
		logx.String("event", "vehicle_assigned"),
		logx.String("order_id", orderID),
		logx.String("assignment_id", assignment.ID),
		logx.String("vehicle_id", vehicle.ID),
		logx.Float64("distance_km", distance),
		logx.Int("eta_min", etaMin),
		logx.Float64("cost", assignment.Cost),
	)
	return assignment, nil
}

// reserveNearest loops selection and reservation until a reservation sticks.
// A lost reservation means another assignment took the vehicle between the
// listing and the reserve, so selection runs again over the shrunken pool.
func (a *Assigner) reserveNearest(weightKg float64, pickup domain.Coordinate) (domain.Vehicle, error) {
	for {
		vehicle, ok := a.SelectOptimal(weightKg, pickup)
		if !ok {
			return domain.Vehicle{}, apperr.ErrNoVehicleAvailable
		}
		if a.fleet.Reserve(vehicle.ID) {
			return vehicle, nil
		}
		if a.conflicts != nil {
			a.conflicts.Inc()
		}
		a.logger.Debug("vehicle reservation lost, retrying",
			logx.String("vehicle_id", vehicle.ID),
		)
	}
}

// Release completes the delivery leg of an order: the assignment is marked
// delivered and the vehicle returns to the available pool. Safe to call for
// orders without an assignment.
func (a *Assigner) Release(ctx context.Context, orderID string) error {
	o, err := a.ledger.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if o.Assignment == nil {
		return nil
	}

	a.orders.SetAssignmentStatus(orderID, domain.AssignmentDelivered)
	a.fleet.MarkAvailable(o.Assignment.VehicleID)

	a.logger.Info("vehicle released",
		logx.String("event", "vehicle_released"),
		logx.String("order_id", orderID),
		logx.String("vehicle_id", o.Assignment.VehicleID),
	)
	return nil
}

// Abort frees the vehicle of a cancelled order without touching the
// assignment status. No-op when the order carries no assignment or the
// delivery already completed.
func (a *Assigner) Abort(ctx context.Context, orderID string) error {
	o, err := a.ledger.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if o.Assignment == nil || o.Assignment.Status == domain.AssignmentDelivered {
		return nil
	}

	a.fleet.MarkAvailable(o.Assignment.VehicleID)
	a.logger.Info("vehicle freed on order cancellation",
		logx.String("order_id", orderID),
		logx.String("vehicle_id", o.Assignment.VehicleID),
	)
	return nil
}
