package domain

import "github.com/segyhp/travel-crm/internal/casing"

const (
	VisaStatusPreparing            = "preparing"
	VisaStatusAppointmentScheduled = "appointment_scheduled"
	VisaStatusSubmitted            = "submitted"
	VisaStatusInReview             = "in_review"
	VisaStatusCompleted            = "completed"
	VisaStatusCancelled            = "cancelled"
)

const (
	VisaResultPending  = "pending"
	VisaResultApproved = "approved"
	VisaResultRejected = "rejected"
)

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

const (
	CurrencyEUR = "€"
	CurrencyTRY = "₺"
	CurrencyUSD = "$"
)

// VisaStatuses in workflow order
var VisaStatuses = []string{
	VisaStatusPreparing,
	VisaStatusAppointmentScheduled,
	VisaStatusSubmitted,
	VisaStatusInReview,
	VisaStatusCompleted,
	VisaStatusCancelled,
}

// VisaApplication represents a visa application filed for a customer.
// CustomerID is a reference only, the application does not own the customer.
type VisaApplication struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customerId" validate:"required"`
	Country         string `json:"country" validate:"required"`
	Category        string `json:"category"`
	Status          string `json:"status" validate:"omitempty,oneof=preparing appointment_scheduled submitted in_review completed cancelled"`
	Fee             string `json:"fee" validate:"amount"`
	Currency        string `json:"currency" validate:"omitempty,oneof=€ ₺ $"`
	PaymentStatus   string `json:"paymentStatus" validate:"omitempty,oneof=paid pending"`
	AppointmentDate string `json:"appointmentDate" validate:"isodate"`
	Result          string `json:"result" validate:"omitempty,oneof=pending approved rejected"`
	Notes           string `json:"notes"`
}

// IsPaid reports whether the fee has been collected
func (v VisaApplication) IsPaid() bool {
	return v.PaymentStatus == PaymentStatusPaid
}

// VisaApplicationSchema is the storage mapping of the visa_applications table
var VisaApplicationSchema = casing.NewSchema("visa_applications",
	casing.Field{App: "id", Storage: "id", Kind: casing.Plain},
	casing.Field{App: "customerId", Storage: "customer_id", Kind: casing.Plain},
	casing.Field{App: "country", Storage: "country", Kind: casing.Plain},
	casing.Field{App: "category", Storage: "category", Kind: casing.Plain},
	casing.Field{App: "status", Storage: "status", Kind: casing.Plain},
	casing.Field{App: "fee", Storage: "fee", Kind: casing.Plain},
	casing.Field{App: "currency", Storage: "currency", Kind: casing.Plain},
	casing.Field{App: "paymentStatus", Storage: "payment_status", Kind: casing.Plain},
	casing.Field{App: "appointmentDate", Storage: "appointment_date", Kind: casing.Date},
	casing.Field{App: "result", Storage: "result", Kind: casing.Plain},
	casing.Field{App: "notes", Storage: "notes", Kind: casing.Plain},
	casing.Field{App: "createdAt", Storage: "created_at", Kind: casing.Plain},
	casing.Field{App: "updatedAt", Storage: "updated_at", Kind: casing.Plain},
)
