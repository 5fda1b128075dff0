package domain

import "time"

// AssignmentStatus represents the delivery progress of an assignment.
type AssignmentStatus string

// List of possible assignment statuses
const (
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentPickedUp  AssignmentStatus = "picked_up"
	AssignmentInTransit AssignmentStatus = "in_transit"
	AssignmentDelivered AssignmentStatus = "delivered"
)

// Stop is a named location on a delivery leg.
type Stop struct {
	Coordinates Coordinate
	Address     string
}

// LogisticsAssignment binds an order to a vehicle for a single delivery leg.
// Created once per order; only Status moves afterwards.
type LogisticsAssignment struct {
	ID                string
	OrderID           string
	VehicleID         string
	DriverID          string
	Pickup            Stop
	Delivery          Stop
	DistanceKm        float64
	EstimatedTimeMin  int
	Cost              float64
	Status            AssignmentStatus
	AssignedAt        time.Time
	EstimatedDelivery time.Time
}
