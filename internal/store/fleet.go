package store

import (
	"sync"

	"agrilink-fulfillment/internal/domain"
)

// FleetRegistry owns the set of delivery vehicles and their availability.
// All access goes through the registry; callers never hold live references.
type FleetRegistry struct {
	mu       sync.RWMutex
	vehicles map[string]*domain.Vehicle
	ids      []string // insertion order, keeps selection deterministic
}

// NewFleetRegistry creates an empty FleetRegistry.
func NewFleetRegistry() *FleetRegistry {
	return &FleetRegistry{vehicles: make(map[string]*domain.Vehicle)}
}

// Seed loads the initial fleet. Vehicles with duplicate ids overwrite in place
// without disturbing the original position.
func (r *FleetRegistry) Seed(vehicles []domain.Vehicle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range vehicles {
		vc := v
		if _, ok := r.vehicles[v.ID]; !ok {
			r.ids = append(r.ids, v.ID)
		}
		r.vehicles[v.ID] = &vc
	}
}

// Get returns a copy of the vehicle with the given id.
func (r *FleetRegistry) Get(id string) (domain.Vehicle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vehicles[id]
	if !ok {
		return domain.Vehicle{}, false
	}
	return *v, true
}

// ListAvailable returns available vehicles with capacity >= minCapacityKg,
// in insertion order.
func (r *FleetRegistry) ListAvailable(minCapacityKg float64) []domain.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Vehicle, 0, len(r.ids))
	for _, id := range r.ids {
		v := r.vehicles[id]
		if v.IsAvailable && v.CapacityKg >= minCapacityKg {
			out = append(out, *v)
		}
	}
	return out
}

// Reserve atomically claims the vehicle: it returns true only if the vehicle
// exists and was available, and marks it unavailable. Of two racing callers
// exactly one sees true.
func (r *FleetRegistry) Reserve(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok || !v.IsAvailable {
		return false
	}
	v.IsAvailable = false
	return true
}

// MarkUnavailable takes the vehicle out of the pool. Idempotent: unknown ids
// and already-unavailable vehicles are ignored.
func (r *FleetRegistry) MarkUnavailable(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.vehicles[id]; ok {
		v.IsAvailable = false
	}
}

// MarkAvailable returns the vehicle to the pool. Idempotent like MarkUnavailable.
func (r *FleetRegistry) MarkAvailable(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.vehicles[id]; ok {
		v.IsAvailable = true
	}
}
