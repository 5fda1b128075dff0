package domain

// UnitWeightKg is the assumed shipping weight of a single product unit.
// The marketplace does not track per-product weights yet.
const UnitWeightKg = 0.5

// CartLine is one product position in a buyer's cart. Product is shared with
// the catalog, not copied; snapshots happen at order time.
type CartLine struct {
	Product  Product
	Quantity int
}

// CartRef is the persisted form of a cart line: product id and quantity.
// Product data is rehydrated from the catalog on read.
type CartRef struct {
	ProductID string
	Quantity  int
}

// CartSnapshot is a read-only view of a cart with totals computed at call time.
type CartSnapshot struct {
	Lines       []CartLine
	TotalAmount float64
	TotalWeight float64
}

// Weight returns the assumed shipping weight of the line.
func (l CartLine) Weight() float64 {
	return float64(l.Quantity) * UnitWeightKg
}

// Subtotal returns the line price at the product's current unit price.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
