package domain

import "time"

type (
	// PaymentMethod represents how a payment is made.
	PaymentMethod string
	// PaymentStatus represents the state of a payment.
	PaymentStatus string
)

// List of possible payment methods
const (
	MethodCard       PaymentMethod = "card"
	MethodUPI        PaymentMethod = "upi"
	MethodNetbanking PaymentMethod = "netbanking"
	MethodWallet     PaymentMethod = "wallet"
)

// List of possible payment statuses
const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

var allowedMethods = [...]PaymentMethod{
	MethodCard, MethodUPI, MethodNetbanking, MethodWallet,
}

// Valid checks if the PaymentMethod is valid
func (m PaymentMethod) Valid() bool {
	for _, v := range allowedMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the payment can no longer change state.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentCompleted || s == PaymentFailed || s == PaymentRefunded
}

// Payment is one simulated payment attempt for an order.
type Payment struct {
	ID            string
	OrderID       string
	Amount        float64
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID string
	PaymentDate   time.Time
}
