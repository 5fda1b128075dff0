package handlers

import (
	"time"

	"agrilink-fulfillment/internal/domain"
)

type coordinateDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type productDTO struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Category          string              `json:"category"`
	Price             float64             `json:"price"`
	Unit              string              `json:"unit"`
	FarmerID          string              `json:"farmer_id"`
	FarmerName        string              `json:"farmer_name"`
	FarmerPhone       string              `json:"farmer_phone"`
	Location          string              `json:"location"`
	Coordinates       coordinateDTO       `json:"coordinates"`
	Description       string              `json:"description,omitempty"`
	HarvestDate       time.Time           `json:"harvest_date"`
	ExpiryDate        time.Time           `json:"expiry_date"`
	OrganicCertified  bool                `json:"organic_certified"`
	MinimumOrder      int                 `json:"minimum_order"`
	AvailableQuantity int                 `json:"available_quantity"`
	QualityGrade      domain.QualityGrade `json:"quality_grade"`
	StorageConditions string              `json:"storage_conditions,omitempty"`
}

type createProductRequest struct {
	Name              string              `json:"name"`
	Category          string              `json:"category"`
	Price             float64             `json:"price"`
	Unit              string              `json:"unit"`
	FarmerID          string              `json:"farmer_id"`
	FarmerName        string              `json:"farmer_name"`
	FarmerPhone       string              `json:"farmer_phone"`
	Location          string              `json:"location"`
	Coordinates       coordinateDTO       `json:"coordinates"`
	Description       string              `json:"description,omitempty"`
	HarvestDate       time.Time           `json:"harvest_date"`
	ExpiryDate        time.Time           `json:"expiry_date"`
	OrganicCertified  bool                `json:"organic_certified"`
	MinimumOrder      int                 `json:"minimum_order"`
	AvailableQuantity int                 `json:"available_quantity"`
	QualityGrade      domain.QualityGrade `json:"quality_grade,omitempty"`
	StorageConditions string              `json:"storage_conditions,omitempty"`
}

type updateProductRequest struct {
	FarmerID          string               `json:"farmer_id"`
	Name              *string              `json:"name,omitempty"`
	Category          *string              `json:"category,omitempty"`
	Price             *float64             `json:"price,omitempty"`
	Unit              *string              `json:"unit,omitempty"`
	Description       *string              `json:"description,omitempty"`
	ExpiryDate        *time.Time           `json:"expiry_date,omitempty"`
	OrganicCertified  *bool                `json:"organic_certified,omitempty"`
	MinimumOrder      *int                 `json:"minimum_order,omitempty"`
	AvailableQuantity *int                 `json:"available_quantity,omitempty"`
	QualityGrade      *domain.QualityGrade `json:"quality_grade,omitempty"`
	StorageConditions *string              `json:"storage_conditions,omitempty"`
}

type buyerDTO struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	Coordinates coordinateDTO `json:"coordinates"`
}

type placeOrderRequest struct {
	Buyer                buyerDTO `json:"buyer"`
	DeliveryInstructions string   `json:"delivery_instructions,omitempty"`
}

type transitionOrderRequest struct {
	Status string `json:"status"`
}

type initiatePaymentRequest struct {
	Method string `json:"method"`
}

type orderLineDTO struct {
	Product   productDTO `json:"product"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unit_price"`
	LineTotal float64    `json:"line_total"`
}

type orderDTO struct {
	ID                   string                  `json:"id"`
	BuyerID              string                  `json:"buyer_id"`
	BuyerName            string                  `json:"buyer_name"`
	BuyerAddress         string                  `json:"buyer_address"`
	BuyerCoordinates     coordinateDTO           `json:"buyer_coordinates"`
	SellerID             string                  `json:"seller_id"`
	SellerName           string                  `json:"seller_name"`
	SellerAddress        string                  `json:"seller_address"`
	SellerCoordinates    coordinateDTO           `json:"seller_coordinates"`
	Lines                []orderLineDTO          `json:"lines"`
	TotalAmount          float64                 `json:"total_amount"`
	TotalWeight          float64                 `json:"total_weight_kg"`
	Status               domain.OrderStatus      `json:"status"`
	OrderDate            time.Time               `json:"order_date"`
	PaymentID            string                  `json:"payment_id,omitempty"`
	PaymentStatus        domain.PaymentStatus    `json:"payment_status,omitempty"`
	Assignment           *assignmentDTO          `json:"assignment,omitempty"`
	DeliveryInstructions string                  `json:"delivery_instructions,omitempty"`
	ExpectedDelivery     *time.Time              `json:"expected_delivery,omitempty"`
}

type paymentDTO struct {
	ID            string               `json:"id"`
	OrderID       string               `json:"order_id"`
	Amount        float64              `json:"amount"`
	Method        domain.PaymentMethod `json:"method"`
	Status        domain.PaymentStatus `json:"status"`
	TransactionID string               `json:"transaction_id,omitempty"`
	PaymentDate   time.Time            `json:"payment_date"`
}

type stopDTO struct {
	Coordinates coordinateDTO `json:"coordinates"`
	Address     string        `json:"address"`
}

type assignmentDTO struct {
	ID                string                  `json:"id"`
	OrderID           string                  `json:"order_id"`
	VehicleID         string                  `json:"vehicle_id"`
	DriverID          string                  `json:"driver_id"`
	Pickup            stopDTO                 `json:"pickup"`
	Delivery          stopDTO                 `json:"delivery"`
	DistanceKm        float64                 `json:"distance_km"`
	EstimatedTimeMin  int                     `json:"estimated_time_min"`
	Cost              float64                 `json:"cost"`
	Status            domain.AssignmentStatus `json:"status"`
	AssignedAt        time.Time               `json:"assigned_at"`
	EstimatedDelivery time.Time               `json:"estimated_delivery"`
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartLineDTO struct {
	Product  productDTO `json:"product"`
	Quantity int        `json:"quantity"`
	Subtotal float64    `json:"subtotal"`
	WeightKg float64    `json:"weight_kg"`
}

type cartDTO struct {
	Lines       []cartLineDTO `json:"lines"`
	TotalAmount float64       `json:"total_amount"`
	TotalWeight float64       `json:"total_weight_kg"`
}
