package domain

import (
	"github.com/segyhp/travel-crm/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the CRM specific tags registered:
// isodate (empty or YYYY-MM-DD), crmemail (empty or local@domain.tld) and
// amount (empty or a non-negative money amount).
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return utils.IsValidDate(fl.Field().String())
	})
	_ = v.RegisterValidation("crmemail", func(fl validator.FieldLevel) bool {
		return utils.IsValidEmailAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		text := fl.Field().String()
		if text == "" {
			return true
		}
		amount, ok := utils.ParseAmountStrict(text)
		return ok && !amount.IsNegative()
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		tour := sl.Current().Interface().(Tour)
		if days, ok := utils.DaysBetween(tour.StartDate, tour.EndDate); ok && days < 0 {
			sl.ReportError(tour.EndDate, "endDate", "EndDate", "daterange", "startDate")
		}
	}, Tour{})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		reservation := sl.Current().Interface().(HotelReservation)
		if nights, ok := reservation.Nights(); ok && nights < 0 {
			sl.ReportError(reservation.CheckOut, "checkOut", "CheckOut", "daterange", "checkIn")
		}
	}, HotelReservation{})

	return v
}
