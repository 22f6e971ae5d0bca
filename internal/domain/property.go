package domain

import (
	"encoding/json"
	"time"
)

type PropertyType string

const (
	PropertyRental PropertyType = "rental"
	PropertyAirbnb PropertyType = "airbnb"
	PropertyOffice PropertyType = "office"
)

func ValidPropertyTypes() []PropertyType {
	return []PropertyType{PropertyRental, PropertyAirbnb, PropertyOffice}
}

func IsValidPropertyType(s string) bool {
	switch PropertyType(s) {
	case PropertyRental, PropertyAirbnb, PropertyOffice:
		return true
	}
	return false
}

type PriceType string

const (
	PricePerMonth PriceType = "month"
	PricePerNight PriceType = "night"
)

type ManagedByKind string

const (
	ManagedByLandlord ManagedByKind = "landlord"
	ManagedByAgency   ManagedByKind = "agency"
)

// Management classifies the party responsible for a property.
// The zero value means unmanaged: no kind, no name, no verification.
// Exactly one of landlord/agency is representable, unlike the four
// loose columns the table stores.
type Management struct {
	Kind     ManagedByKind
	Name     string
	Verified bool
}

func (m Management) IsZero() bool { return m.Kind == "" }

// Special bedroom counts. These are display categories, not fractions
// of a room; the source data uses exactly these two values.
const (
	BedroomsSingleRoom = 0.5
	BedroomsBedsitter  = 0.75
)

type Property struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Location   string       `json:"location"`
	Price      float64      `json:"price"`
	PriceType  PriceType    `json:"price_type"`
	Rating     float64      `json:"rating"`
	Reviews    int          `json:"reviews"`
	Bedrooms   float64      `json:"bedrooms"`
	Bathrooms  float64      `json:"bathrooms"`
	Area       int          `json:"area"`
	Image      string       `json:"image"`
	Type       PropertyType `json:"type"`
	Featured   bool         `json:"featured"`
	Management Management   `json:"-"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// RoomCategory returns the display label for the bedroom count.
func (p *Property) RoomCategory() string {
	switch p.Bedrooms {
	case BedroomsSingleRoom:
		return "Single Room"
	case BedroomsBedsitter:
		return "Bedsitter"
	}
	return ""
}

// propertyJSON is the wire shape: the management variant flattens to
// the legacy optional column pairs.
type propertyJSON struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Location         string       `json:"location"`
	Price            float64      `json:"price"`
	PriceType        PriceType    `json:"price_type"`
	Rating           float64      `json:"rating"`
	Reviews          int          `json:"reviews"`
	Bedrooms         float64      `json:"bedrooms"`
	Bathrooms        float64      `json:"bathrooms"`
	Area             int          `json:"area"`
	Image            string       `json:"image"`
	Type             PropertyType `json:"type"`
	Featured         bool         `json:"featured"`
	ManagedBy        *string      `json:"managed_by,omitempty"`
	LandlordName     *string      `json:"landlord_name,omitempty"`
	LandlordVerified *bool        `json:"landlord_verified,omitempty"`
	AgencyName       *string      `json:"agency_name,omitempty"`
	AgencyVerified   *bool        `json:"agency_verified,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func (p Property) MarshalJSON() ([]byte, error) {
	out := propertyJSON{
		ID:        p.ID,
		Title:     p.Title,
		Location:  p.Location,
		Price:     p.Price,
		PriceType: p.PriceType,
		Rating:    p.Rating,
		Reviews:   p.Reviews,
		Bedrooms:  p.Bedrooms,
		Bathrooms: p.Bathrooms,
		Area:      p.Area,
		Image:     p.Image,
		Type:      p.Type,
		Featured:  p.Featured,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if !p.Management.IsZero() {
		kind := string(p.Management.Kind)
		name := p.Management.Name
		verified := p.Management.Verified
		out.ManagedBy = &kind
		switch p.Management.Kind {
		case ManagedByLandlord:
			out.LandlordName = &name
			out.LandlordVerified = &verified
		case ManagedByAgency:
			out.AgencyName = &name
			out.AgencyVerified = &verified
		}
	}

	return json.Marshal(out)
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var in propertyJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*p = Property{
		ID:        in.ID,
		Title:     in.Title,
		Location:  in.Location,
		Price:     in.Price,
		PriceType: in.PriceType,
		Rating:    in.Rating,
		Reviews:   in.Reviews,
		Bedrooms:  in.Bedrooms,
		Bathrooms: in.Bathrooms,
		Area:      in.Area,
		Image:     in.Image,
		Type:      in.Type,
		Featured:  in.Featured,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}

	if in.ManagedBy != nil {
		m := Management{Kind: ManagedByKind(*in.ManagedBy)}
		switch m.Kind {
		case ManagedByLandlord:
			if in.LandlordName != nil {
				m.Name = *in.LandlordName
			}
			if in.LandlordVerified != nil {
				m.Verified = *in.LandlordVerified
			}
		case ManagedByAgency:
			if in.AgencyName != nil {
				m.Name = *in.AgencyName
			}
			if in.AgencyVerified != nil {
				m.Verified = *in.AgencyVerified
			}
		}
		p.Management = m
	}

	return nil
}
