package domain

// VehicleType represents the class of a delivery vehicle.
type VehicleType string

// List of possible vehicle types
const (
	VehicleBike       VehicleType = "bike"
	VehicleAuto       VehicleType = "auto"
	VehicleMiniTruck  VehicleType = "mini_truck"
	VehicleTruck      VehicleType = "truck"
	VehicleLargeTruck VehicleType = "large_truck"
)

var allowedVehicleTypes = [...]VehicleType{
	VehicleBike, VehicleAuto, VehicleMiniTruck, VehicleTruck, VehicleLargeTruck,
}

// Valid checks if the VehicleType is valid
func (t VehicleType) Valid() bool {
	for _, v := range allowedVehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Vehicle represents a delivery vehicle in the fleet.
type Vehicle struct {
	ID              string
	Type            VehicleType
	CapacityKg      float64
	DriverID        string
	DriverName      string
	DriverPhone     string
	VehicleNumber   string
	CurrentLocation Coordinate
	IsAvailable     bool
	CostPerKm       float64
}
