package domain

import (
	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/pkg/utils"
)

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeTwin   = "twin"
	RoomTypeTriple = "triple"
	RoomTypeSuite  = "suite"
	RoomTypeFamily = "family"
)

// HotelReservation represents a hotel booking made for a customer
type HotelReservation struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId" validate:"required"`
	HotelName     string `json:"hotelName" validate:"required,max=255"`
	City          string `json:"city"`
	Status        string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	CheckIn       string `json:"checkIn" validate:"isodate"`
	CheckOut      string `json:"checkOut" validate:"isodate"`
	RoomType      string `json:"roomType" validate:"omitempty,oneof=single double twin triple suite family"`
	Guests        int    `json:"guests" validate:"gte=0"`
	Price         string `json:"price" validate:"amount"`
	Currency      string `json:"currency" validate:"omitempty,oneof=€ ₺ $"`
	PaymentStatus string `json:"paymentStatus" validate:"omitempty,oneof=paid pending"`
	Notes         string `json:"notes"`
}

// Nights returns the length of stay, false when either date is missing
func (h HotelReservation) Nights() (int, bool) {
	return utils.DaysBetween(h.CheckIn, h.CheckOut)
}

// HotelReservationSchema is the storage mapping of the hotel_reservations table
var HotelReservationSchema = casing.NewSchema("hotel_reservations",
	casing.Field{App: "id", Storage: "id", Kind: casing.Plain},
	casing.Field{App: "customerId", Storage: "customer_id", Kind: casing.Plain},
	casing.Field{App: "hotelName", Storage: "hotel_name", Kind: casing.Plain},
	casing.Field{App: "city", Storage: "city", Kind: casing.Plain},
	casing.Field{App: "status", Storage: "status", Kind: casing.Plain},
	casing.Field{App: "checkIn", Storage: "check_in", Kind: casing.Date},
	casing.Field{App: "checkOut", Storage: "check_out", Kind: casing.Date},
	casing.Field{App: "roomType", Storage: "room_type", Kind: casing.Plain},
	casing.Field{App: "guests", Storage: "guests", Kind: casing.Plain},
	casing.Field{App: "price", Storage: "price", Kind: casing.Plain},
	casing.Field{App: "currency", Storage: "currency", Kind: casing.Plain},
	casing.Field{App: "paymentStatus", Storage: "payment_status", Kind: casing.Plain},
	casing.Field{App: "notes", Storage: "notes", Kind: casing.Plain},
	casing.Field{App: "createdAt", Storage: "created_at", Kind: casing.Plain},
	casing.Field{App: "updatedAt", Storage: "updated_at", Kind: casing.Plain},
)
