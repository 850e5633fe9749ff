package domain

import (
	"fmt"

	"github.com/segyhp/travel-crm/internal/casing"

	"github.com/go-viper/mapstructure/v2"
)

// Entity names a persisted record type. The value doubles as the URL segment.
type Entity string

const (
	EntityCustomer         Entity = "customers"
	EntityVisaApplication  Entity = "visa-applications"
	EntityTour             Entity = "tours"
	EntityHotelReservation Entity = "hotel-reservations"
)

// Entities lists every persisted entity
var Entities = []Entity{
	EntityCustomer,
	EntityVisaApplication,
	EntityTour,
	EntityHotelReservation,
}

// Schema returns the storage mapping of the entity
func (e Entity) Schema() *casing.Schema {
	switch e {
	case EntityCustomer:
		return CustomerSchema
	case EntityVisaApplication:
		return VisaApplicationSchema
	case EntityTour:
		return TourSchema
	case EntityHotelReservation:
		return HotelReservationSchema
	default:
		return nil
	}
}

// SearchColumns lists the text columns matched by a free text search
func (e Entity) SearchColumns() []string {
	switch e {
	case EntityCustomer:
		return []string{"name", "national_id", "email", "phone", "passport_number", "firm", "sector"}
	case EntityVisaApplication:
		return []string{"country", "category", "notes"}
	case EntityTour:
		return []string{"name", "destination"}
	case EntityHotelReservation:
		return []string{"hotel_name", "city"}
	default:
		return nil
	}
}

// NewValue returns a pointer to an empty typed value of the entity
func (e Entity) NewValue() (any, error) {
	switch e {
	case EntityCustomer:
		return &Customer{}, nil
	case EntityVisaApplication:
		return &VisaApplication{}, nil
	case EntityTour:
		return &Tour{}, nil
	case EntityHotelReservation:
		return &HotelReservation{}, nil
	default:
		return nil, fmt.Errorf("unknown entity %q", e)
	}
}

// Decode fills out from an application-shape record. Unknown keys are ignored.
func Decode(r casing.Record, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any(r))
}

// DecodeAll decodes every record into a new slice of T
func DecodeAll[T any](records []casing.Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		var v T
		if err := Decode(r, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
