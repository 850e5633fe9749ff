package domain

import (
	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/pkg/utils"

	"github.com/shopspring/decimal"
)

const (
	TourStatusPlanning  = "planning"
	TourStatusOpen      = "open"
	TourStatusFull      = "full"
	TourStatusOngoing   = "ongoing"
	TourStatusCompleted = "completed"
	TourStatusCancelled = "cancelled"
)

// Tour represents a group tour with its participants and cost breakdown
type Tour struct {
	ID                string   `json:"id"`
	Name              string   `json:"name" validate:"required,max=255"`
	Destination       string   `json:"destination"`
	Status            string   `json:"status" validate:"omitempty,oneof=planning open full ongoing completed cancelled"`
	StartDate         string   `json:"startDate" validate:"isodate"`
	EndDate           string   `json:"endDate" validate:"isodate"`
	Participants      []string `json:"participants"`
	Activities        []any    `json:"activities"`
	PricePerPerson    string   `json:"pricePerPerson" validate:"amount"`
	TransportCost     string   `json:"transportCost" validate:"amount"`
	AccommodationCost string   `json:"accommodationCost" validate:"amount"`
	GuideCost         string   `json:"guideCost" validate:"amount"`
	Currency          string   `json:"currency" validate:"omitempty,oneof=€ ₺ $"`
	Notes             string   `json:"notes"`
}

// IsActive reports whether the tour is still taking or serving participants
func (t Tour) IsActive() bool {
	return t.Status == TourStatusOpen || t.Status == TourStatusFull || t.Status == TourStatusOngoing
}

// CostTotal sums the cost breakdown
func (t Tour) CostTotal() decimal.Decimal {
	return utils.ParseAmount(t.TransportCost).
		Add(utils.ParseAmount(t.AccommodationCost)).
		Add(utils.ParseAmount(t.GuideCost))
}

// ExpectedRevenue is the per-person price times the participant count
func (t Tour) ExpectedRevenue() decimal.Decimal {
	return utils.ParseAmount(t.PricePerPerson).Mul(decimal.NewFromInt(int64(len(t.Participants))))
}

// TourSchema is the storage mapping of the tours table
var TourSchema = casing.NewSchema("tours",
	casing.Field{App: "id", Storage: "id", Kind: casing.Plain},
	casing.Field{App: "name", Storage: "name", Kind: casing.Plain},
	casing.Field{App: "destination", Storage: "destination", Kind: casing.Plain},
	casing.Field{App: "status", Storage: "status", Kind: casing.Plain},
	casing.Field{App: "startDate", Storage: "start_date", Kind: casing.Date},
	casing.Field{App: "endDate", Storage: "end_date", Kind: casing.Date},
	casing.Field{App: "participants", Storage: "participants", Kind: casing.List},
	casing.Field{App: "activities", Storage: "activities", Kind: casing.Activities},
	casing.Field{App: "pricePerPerson", Storage: "price_per_person", Kind: casing.Plain},
	casing.Field{App: "transportCost", Storage: "transport_cost", Kind: casing.Plain},
	casing.Field{App: "accommodationCost", Storage: "accommodation_cost", Kind: casing.Plain},
	casing.Field{App: "guideCost", Storage: "guide_cost", Kind: casing.Plain},
	casing.Field{App: "currency", Storage: "currency", Kind: casing.Plain},
	casing.Field{App: "notes", Storage: "notes", Kind: casing.Plain},
	casing.Field{App: "createdAt", Storage: "created_at", Kind: casing.Plain},
	casing.Field{App: "updatedAt", Storage: "updated_at", Kind: casing.Plain},
)
