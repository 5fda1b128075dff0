package domain

import (
	"regexp"
	"time"
)

// QualityGrade represents a produce quality grade.
type QualityGrade string

// List of possible quality grades
const (
	GradeA QualityGrade = "A"
	GradeB QualityGrade = "B"
	GradeC QualityGrade = "C"
)

var allowedGrades = [...]QualityGrade{GradeA, GradeB, GradeC}

// Valid checks if the QualityGrade is valid
func (g QualityGrade) Valid() bool {
	for _, v := range allowedGrades {
		if g == v {
			return true
		}
	}
	return false
}

// Product is a listing a producer offers on the marketplace.
type Product struct {
	ID                string
	Name              string
	Category          string
	Price             float64
	Unit              string
	FarmerID          string
	FarmerName        string
	FarmerPhone       string
	Location          string
	Coordinates       Coordinate
	Description       string
	HarvestDate       time.Time
	ExpiryDate        time.Time
	OrganicCertified  bool
	MinimumOrder      int
	AvailableQuantity int
	QualityGrade      QualityGrade
	StorageConditions string
}

// PartialProductUpdate carries optional fields to update a product.
// A nil field means “do not change” that attribute.
type PartialProductUpdate struct {
	ID                string
	Name              *string
	Category          *string
	Price             *float64
	Unit              *string
	Description       *string
	ExpiryDate        *time.Time
	OrganicCertified  *bool
	MinimumOrder      *int
	AvailableQuantity *int
	QualityGrade      *QualityGrade
	StorageConditions *string
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{2}-?[0-9]{10}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
