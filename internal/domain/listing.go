package domain

// PropertyType is the closed set of listing kinds.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeLand      PropertyType = "Land"
)

// PropertyTypes lists every valid PropertyType, in display order.
var PropertyTypes = []PropertyType{PropertyTypeHouse, PropertyTypeApartment, PropertyTypeLand}

// Valid reports whether t is one of the three known property types.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeLand:
		return true
	}
	return false
}

// Listing is a single property record. ID, OwnerID and CreatedAt are assigned
// at creation and never change afterwards; the first image is the primary one
// shown in list views. CreatedAt is unix milliseconds.
type Listing struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         PropertyType `json:"type"`
	Price        float64      `json:"price"`
	Area         float64      `json:"area"`
	City         string       `json:"city"`
	Neighborhood string       `json:"neighborhood"`
	Images       []string     `json:"images"`
	ContactName  string       `json:"contactName"`
	ContactPhone string       `json:"contactPhone"`
	ContactEmail string       `json:"contactEmail"`
	OwnerID      string       `json:"ownerId"`
	CreatedAt    int64        `json:"createdAt"`
}
