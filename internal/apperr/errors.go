package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrOrderNotFound indicates that no order exists for the given id.
var ErrOrderNotFound = errors.New("order not found")

// ErrProductNotFound indicates that no product exists for the given id.
var ErrProductNotFound = errors.New("product not found")

// ErrEmptyCart is returned when checkout is attempted with no cart lines.
var ErrEmptyCart = errors.New("cart is empty")

// ErrMixedSellerCart is returned when cart lines belong to more than one producer.
var ErrMixedSellerCart = errors.New("cart mixes products from different sellers")

// ErrNoVehicleAvailable indicates that no available vehicle can carry the shipment.
var ErrNoVehicleAvailable = errors.New("no vehicle available")

// ErrInvalidTransition indicates an order status change not allowed by the lifecycle.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrConflict indicates a uniqueness or state conflict.
var ErrConflict = errors.New("conflict")
