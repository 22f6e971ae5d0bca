package catalog

// ---------- PROPERTIES ----------

type CreatePropertyRequest struct {
	Title     string  `json:"title" validate:"required"`
	Location  string  `json:"location" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	PriceType string  `json:"price_type" validate:"required,oneof=month night"`
	Bedrooms  float64 `json:"bedrooms" validate:"gte=0"`
	Bathrooms float64 `json:"bathrooms" validate:"gte=0"`
	Area      int     `json:"area" validate:"gte=0"`
	Image     string  `json:"image" validate:"required,url"`
	Type      string  `json:"type" validate:"required,oneof=rental airbnb office"`
	Featured  bool    `json:"featured"`

	ManagedBy        string `json:"managed_by,omitempty" validate:"omitempty,oneof=landlord agency"`
	LandlordName     string `json:"landlord_name,omitempty"`
	LandlordVerified bool   `json:"landlord_verified,omitempty"`
	AgencyName       string `json:"agency_name,omitempty"`
	AgencyVerified   bool   `json:"agency_verified,omitempty"`
}

type UpdatePropertyRequest struct {
	Title     *string  `json:"title,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	PriceType *string  `json:"price_type,omitempty"`
	Bedrooms  *float64 `json:"bedrooms,omitempty"`
	Bathrooms *float64 `json:"bathrooms,omitempty"`
	Area      *int     `json:"area,omitempty"`
	Image     *string  `json:"image,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Featured  *bool    `json:"featured,omitempty"`

	ManagedBy        *string `json:"managed_by,omitempty"`
	LandlordName     *string `json:"landlord_name,omitempty"`
	LandlordVerified *bool   `json:"landlord_verified,omitempty"`
	AgencyName       *string `json:"agency_name,omitempty"`
	AgencyVerified   *bool   `json:"agency_verified,omitempty"`
}
