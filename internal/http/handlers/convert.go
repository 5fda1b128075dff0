package handlers

import (
	"agrilink-fulfillment/internal/domain"
)

func coordinateToDTO(c domain.Coordinate) coordinateDTO {
	return coordinateDTO{Lat: c.Lat, Lng: c.Lng}
}

func (d coordinateDTO) toModel() domain.Coordinate {
	return domain.Coordinate{Lat: d.Lat, Lng: d.Lng}
}

func (r createProductRequest) toModel() domain.Product {
	return domain.Product{
		Name:              r.Name,
		Category:          r.Category,
		Price:             r.Price,
		Unit:              r.Unit,
		FarmerID:          r.FarmerID,
		FarmerName:        r.FarmerName,
		FarmerPhone:       r.FarmerPhone,
		Location:          r.Location,
		Coordinates:       r.Coordinates.toModel(),
		Description:       r.Description,
		HarvestDate:       r.HarvestDate,
		ExpiryDate:        r.ExpiryDate,
		OrganicCertified:  r.OrganicCertified,
		MinimumOrder:      r.MinimumOrder,
		AvailableQuantity: r.AvailableQuantity,
		QualityGrade:      r.QualityGrade,
		StorageConditions: r.StorageConditions,
	}
}

func (r updateProductRequest) toModel(id string) domain.PartialProductUpdate {
	return domain.PartialProductUpdate{
		ID:                id,
		Name:              r.Name,
		Category:          r.Category,
		Price:             r.Price,
		Unit:              r.Unit,
		Description:       r.Description,
		ExpiryDate:        r.ExpiryDate,
		OrganicCertified:  r.OrganicCertified,
		MinimumOrder:      r.MinimumOrder,
		AvailableQuantity: r.AvailableQuantity,
		QualityGrade:      r.QualityGrade,
		StorageConditions: r.StorageConditions,
	}
}

func (d buyerDTO) toModel() domain.Buyer {
	return domain.Buyer{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		Address:     d.Address,
		Coordinates: d.Coordinates.toModel(),
	}
}

func productToResponse(p domain.Product) productDTO {
	return productDTO{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Price:             p.Price,
		Unit:              p.Unit,
		FarmerID:          p.FarmerID,
		FarmerName:        p.FarmerName,
		FarmerPhone:       p.FarmerPhone,
		Location:          p.Location,
		Coordinates:       coordinateToDTO(p.Coordinates),
		Description:       p.Description,
		HarvestDate:       p.HarvestDate,
		ExpiryDate:        p.ExpiryDate,
		OrganicCertified:  p.OrganicCertified,
		MinimumOrder:      p.MinimumOrder,
		AvailableQuantity: p.AvailableQuantity,
		QualityGrade:      p.QualityGrade,
		StorageConditions: p.StorageConditions,
	}
}

func productsToResponse(list []domain.Product) []productDTO {
	out := make([]productDTO, 0, len(list))
	for _, p := range list {
		out = append(out, productToResponse(p))
	}
	return out
}

func assignmentToResponse(a domain.LogisticsAssignment) assignmentDTO {
	return assignmentDTO{
		ID:        a.ID,
		OrderID:   a.OrderID,
		VehicleID: a.VehicleID,
		DriverID:  a.DriverID,
		Pickup: stopDTO{
			Coordinates: coordinateToDTO(a.Pickup.Coordinates),
			Address:     a.Pickup.Address,
		},
		Delivery: stopDTO{
			Coordinates: coordinateToDTO(a.Delivery.Coordinates),
			Address:     a.Delivery.Address,
		},
		DistanceKm:        a.DistanceKm,
		EstimatedTimeMin:  a.EstimatedTimeMin,
		Cost:              a.Cost,
		Status:            a.Status,
		AssignedAt:        a.AssignedAt,
		EstimatedDelivery: a.EstimatedDelivery,
	}
}

func orderToResponse(o domain.Order) orderDTO {
	dto := orderDTO{
		ID:                   o.ID,
		BuyerID:              o.BuyerID,
		BuyerName:            o.BuyerName,
		BuyerAddress:         o.BuyerAddress,
		BuyerCoordinates:     coordinateToDTO(o.BuyerCoordinates),
		SellerID:             o.SellerID,
		SellerName:           o.SellerName,
		SellerAddress:        o.SellerAddress,
		SellerCoordinates:    coordinateToDTO(o.SellerCoordinates),
		Lines:                make([]orderLineDTO, 0, len(o.Lines)),
		TotalAmount:          o.TotalAmount,
		TotalWeight:          o.TotalWeight,
		Status:               o.Status,
		OrderDate:            o.OrderDate,
		PaymentID:            o.PaymentID,
		PaymentStatus:        o.PaymentStatus,
		DeliveryInstructions: o.DeliveryInstructions,
	}
	for _, line := range o.Lines {
		dto.Lines = append(dto.Lines, orderLineDTO{
			Product:   productToResponse(line.Product),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	if o.Assignment != nil {
		a := assignmentToResponse(*o.Assignment)
		dto.Assignment = &a
	}
	if !o.ExpectedDelivery.IsZero() {
		ed := o.ExpectedDelivery
		dto.ExpectedDelivery = &ed
	}
	return dto
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o))
	}
	return out
}

func paymentToResponse(p domain.Payment) paymentDTO {
	return paymentDTO{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		PaymentDate:   p.PaymentDate,
	}
}

func paymentsToResponse(list []domain.Payment) []paymentDTO {
	out := make([]paymentDTO, 0, len(list))
	for _, p := range list {
		out = append(out, paymentToResponse(p))
	}
	return out
}

func cartToResponse(s domain.CartSnapshot) cartDTO {
	dto := cartDTO{
		Lines:       make([]cartLineDTO, 0, len(s.Lines)),
		TotalAmount: s.TotalAmount,
		TotalWeight: s.TotalWeight,
	}
	for _, line := range s.Lines {
		dto.Lines = append(dto.Lines, cartLineDTO{
			Product:  productToResponse(line.Product),
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
			WeightKg: line.Weight(),
		})
	}
	return dto
}
