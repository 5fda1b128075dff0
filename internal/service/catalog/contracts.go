package catalog

import "agrilink-fulfillment/internal/domain"

// productStore defines storage operations required by the catalog service.
type productStore interface {
	Insert(p domain.Product)
	Get(id string) (domain.Product, bool)
	Update(u domain.PartialProductUpdate) bool
	Delete(id string) bool
	List() []domain.Product
	ListByFarmer(farmerID string) []domain.Product
}
