package catalog

import (
	"strings"

	"github.com/google/uuid"

	"agrilink-fulfillment/internal/apperr"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
)

// Service coordinates product-listing business logic. Only the owning
// producer may edit or remove a listing.
type Service struct {
	store  productStore
	logger logx.Logger
	newID  func() string
}

// NewService creates and configures a catalog Service.
func NewService(store productStore, logger logx.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		newID:  func() string { return "PROD-" + uuid.NewString() },
	}
}

// validateCreate validates a product for listing.
func validateCreate(p *domain.Product) error {
	if p == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.FarmerID) == "" {
		return apperr.ErrInvalid
	}
	if p.FarmerPhone != "" && !domain.ValidatePhone(p.FarmerPhone) {
		return apperr.ErrInvalid
	}
	if p.Price < 0 || p.AvailableQuantity < 0 || p.MinimumOrder < 1 {
		return apperr.ErrInvalid
	}
	if p.QualityGrade == "" {
		p.QualityGrade = domain.GradeB
	}
	if !p.QualityGrade.Valid() {
		return apperr.ErrInvalid
	}
	if !p.Coordinates.Valid() {
		return apperr.ErrInvalid
	}
	if !p.ExpiryDate.IsZero() && p.ExpiryDate.Before(p.HarvestDate) {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialProductUpdate) error {
	if strings.TrimSpace(u.ID) == "" {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Category == nil && u.Price == nil && u.Unit == nil &&
		u.Description == nil && u.ExpiryDate == nil && u.OrganicCertified == nil &&
		u.MinimumOrder == nil && u.AvailableQuantity == nil &&
		u.QualityGrade == nil && u.StorageConditions == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.Price != nil && *u.Price < 0 {
		return apperr.ErrInvalid
	}
	if u.AvailableQuantity != nil && *u.AvailableQuantity < 0 {
		return apperr.ErrInvalid
	}
	if u.MinimumOrder != nil && *u.MinimumOrder < 1 {
		return apperr.ErrInvalid
	}
	if u.QualityGrade != nil && !u.QualityGrade.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

// Create lists a new product and returns its generated id.
func (s *Service) Create(p domain.Product) (string, error) {
	if err := validateCreate(&p); err != nil {
		return "", err
	}
	p.ID = s.newID()
	s.store.Insert(p)

	s.logger.Info("product listed",
		logx.String("event", "product_listed"),
		logx.String("product_id", p.ID),
		logx.String("farmer_id", p.FarmerID),
	)
	return p.ID, nil
}

// Get retrieves a product by its id.
func (s *Service) Get(id string) (domain.Product, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return domain.Product{}, apperr.ErrProductNotFound
	}
	return p, nil
}

// List returns every listed product.
func (s *Service) List() []domain.Product {
	return s.store.List()
}

// ListByFarmer returns the products of one producer.
func (s *Service) ListByFarmer(farmerID string) []domain.Product {
	return s.store.ListByFarmer(farmerID)
}

// Update applies a partial update on behalf of actorID.
func (s *Service) Update(actorID string, u domain.PartialProductUpdate) error {
	if err := validateUpdate(&u); err != nil {
		return err
	}
	p, ok := s.store.Get(u.ID)
	if !ok {
		return apperr.ErrProductNotFound
	}
	if p.FarmerID != actorID {
		return apperr.ErrConflict
	}
	if u.ExpiryDate != nil && u.ExpiryDate.Before(p.HarvestDate) {
		return apperr.ErrInvalid
	}
	if !s.store.Update(u) {
		return apperr.ErrProductNotFound
	}
	return nil
}

// Delete removes a listing on behalf of actorID.
func (s *Service) Delete(actorID, id string) error {
	p, ok := s.store.Get(id)
	if !ok {
		return apperr.ErrProductNotFound
	}
	if p.FarmerID != actorID {
		return apperr.ErrConflict
	}
	if !s.store.Delete(id) {
		return apperr.ErrProductNotFound
	}
	return nil
}
