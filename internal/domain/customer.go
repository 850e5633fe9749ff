package domain

import "github.com/segyhp/travel-crm/internal/casing"

// Customer represents an agency customer and their travel documents
type Customer struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name" validate:"required,max=255"`
	NationalID          string   `json:"nationalId" validate:"max=32"`
	Email               string   `json:"email" validate:"max=255,crmemail"`
	Phone               string   `json:"phone" validate:"max=32"`
	BirthDate           string   `json:"birthDate" validate:"isodate"`
	PassportNumber      string   `json:"passportNumber" validate:"max=32"`
	PassportExpiry      string   `json:"passportExpiry" validate:"isodate"`
	SchengenVisaCountry string   `json:"schengenVisaCountry"`
	SchengenVisaEndDate string   `json:"schengenVisaEndDate" validate:"isodate"`
	HasUSVisa           bool     `json:"hasUsVisa"`
	USVisaEndDate       string   `json:"usVisaEndDate" validate:"isodate"`
	Tags                []string `json:"tags"`
	Firm                string   `json:"firm"`
	Sector              string   `json:"sector"`
	Notes               string   `json:"notes"`
}

// CustomerSchema is the storage mapping of the customers table
var CustomerSchema = casing.NewSchema("customers",
	casing.Field{App: "id", Storage: "id", Kind: casing.Plain},
	casing.Field{App: "name", Storage: "name", Kind: casing.Plain},
	casing.Field{App: "nationalId", Storage: "national_id", Kind: casing.Plain},
	casing.Field{App: "email", Storage: "email", Kind: casing.Plain},
	casing.Field{App: "phone", Storage: "phone", Kind: casing.Plain},
	casing.Field{App: "birthDate", Storage: "birth_date", Kind: casing.Date},
	casing.Field{App: "passportNumber", Storage: "passport_number", Kind: casing.Plain},
	casing.Field{App: "passportExpiry", Storage: "passport_expiry", Kind: casing.Date},
	casing.Field{App: "schengenVisaCountry", Storage: "schengen_visa_country", Kind: casing.Plain},
	casing.Field{App: "schengenVisaEndDate", Storage: "schengen_visa_end_date", Kind: casing.Date},
	casing.Field{App: "hasUsVisa", Storage: "has_us_visa", Kind: casing.Plain},
	casing.Field{App: "usVisaEndDate", Storage: "us_visa_end_date", Kind: casing.Date},
	casing.Field{App: "tags", Storage: "tags", Kind: casing.Tags},
	casing.Field{App: "firm", Storage: "firm", Kind: casing.Plain},
	casing.Field{App: "sector", Storage: "sector", Kind: casing.Plain},
	casing.Field{App: "notes", Storage: "notes", Kind: casing.Plain},
	casing.Field{App: "createdAt", Storage: "created_at", Kind: casing.Plain},
	casing.Field{App: "updatedAt", Storage: "updated_at", Kind: casing.Plain},
)
