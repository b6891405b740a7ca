package models

// PropertyStatus represents where a property sits in its sale lifecycle
type PropertyStatus string

const (
	PropertyActive    PropertyStatus = "active"
	PropertyPending   PropertyStatus = "pending"
	PropertySold      PropertyStatus = "sold"
	PropertyOffMarket PropertyStatus = "off-market"
)

// Property represents a real-estate transaction file
type Property struct {
	ID               string         `json:"id"`
	Address          string         `json:"address"`
	City             string         `json:"city"`
	State            string         `json:"state"`
	Zip              string         `json:"zip"`
	SalePrice        float64        `json:"sale_price,omitempty"`
	MortgageAmount   float64        `json:"mortgage_amount,omitempty"`
	OwnersInsurance  float64        `json:"owners_insurance,omitempty"`
	Lenders          string         `json:"lenders,omitempty"`
	Loan             string         `json:"loan,omitempty"`
	Policy           string         `json:"policy,omitempty"`
	PropertyType     string         `json:"property_type,omitempty"` // residential, commercial, land
	SquareFootage    int            `json:"square_footage,omitempty"`
	Bedrooms         int            `json:"bedrooms,omitempty"`
	Bathrooms        int            `json:"bathrooms,omitempty"`
	YearBuilt        int            `json:"year_built,omitempty"`
	LotSize          float64        `json:"lot_size,omitempty"`
	Zoning           string         `json:"zoning,omitempty"`
	TaxAssessedValue float64        `json:"tax_assessed_value,omitempty"`
	Status           PropertyStatus `json:"status,omitempty"`
	Neighborhood     string         `json:"neighborhood,omitempty"`
	SchoolDistrict   string         `json:"school_district,omitempty"`
	Utilities        []string       `json:"utilities,omitempty"`
	Features         []string       `json:"features,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	CreatedAt        string         `json:"created_at,omitempty"`
	UpdatedAt        string         `json:"updated_at,omitempty"`
}

// Clone returns a deep copy of the property
func (p Property) Clone() Property {
	out := p
	if p.Utilities != nil {
		out.Utilities = append([]string(nil), p.Utilities...)
	}
	if p.Features != nil {
		out.Features = append([]string(nil), p.Features...)
	}
	return out
}

// Document represents a file attached to a property transaction
type Document struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Size         string   `json:"size"`
	URL          string   `json:"url"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	UploadedBy   string   `json:"uploaded_by,omitempty"`
	UploadedAt   string   `json:"uploaded_at,omitempty"`
	LastModified string   `json:"last_modified,omitempty"`
	Version      string   `json:"version,omitempty"`
	Status       string   `json:"status,omitempty"` // draft, review, approved, archived
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	out := d
	if d.Tags != nil {
		out.Tags = append([]string(nil), d.Tags...)
	}
	return out
}
