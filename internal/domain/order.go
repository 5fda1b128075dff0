package domain

import "time"

// Buyer is the buyer-side identity captured when an order is placed.
type Buyer struct {
	ID          string
	Name        string
	Phone       string
	Address     string
	Coordinates Coordinate
}

// OrderLine is one product position of an order. Product is a snapshot taken
// at order time, not a live catalog reference.
type OrderLine struct {
	Product   Product
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// Order - struct representing a placed order. Identity and party snapshots
// are immutable; status and the logistics assignment change only through
// the ledger.
type Order struct {
	ID                   string
	BuyerID              string
	BuyerName            string
	BuyerPhone           string
	BuyerAddress         string
	BuyerCoordinates     Coordinate
	SellerID             string
	SellerName           string
	SellerPhone          string
	SellerAddress        string
	SellerCoordinates    Coordinate
	Lines                []OrderLine
	TotalAmount          float64
	TotalWeight          float64
	Status               OrderStatus
	OrderDate            time.Time
	PaymentID            string
	PaymentStatus        PaymentStatus
	Assignment           *LogisticsAssignment
	DeliveryInstructions string
	ExpectedDelivery     time.Time
}

// ParticipantRole selects which side of an order a user is on.
type ParticipantRole string

// List of possible participant roles
const (
	RoleBuyer  ParticipantRole = "buyer"
	RoleSeller ParticipantRole = "seller"
)

// Valid checks if the ParticipantRole is valid
func (r ParticipantRole) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}
