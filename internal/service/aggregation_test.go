package service_test

import (
	"testing"

	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSumByCurrencyAndPaymentStatus(t *testing.T) {
	apps := []domain.VisaApplication{
		{Fee: "100", Currency: domain.CurrencyEUR, PaymentStatus: domain.PaymentStatusPaid},
		{Fee: "50", Currency: domain.CurrencyTRY, PaymentStatus: domain.PaymentStatusPending},
	}

	totals := service.SumByCurrencyAndPaymentStatus(apps, nil)

	assert.True(t, totals.PaidIn(domain.CurrencyEUR).Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.PendingIn(domain.CurrencyEUR).IsZero())
	assert.True(t, totals.PaidIn(domain.CurrencyTRY).IsZero())
	assert.True(t, totals.PendingIn(domain.CurrencyTRY).Equal(decimal.NewFromInt(50)))
}

func TestSumByCurrencyAndPaymentStatus_SkipsWhatCannotBeCounted(t *testing.T) {
	apps := []domain.VisaApplication{
		{Fee: "€1.234,56", Currency: domain.CurrencyEUR, PaymentStatus: domain.PaymentStatusPaid},
		{Fee: "80,00", Currency: domain.CurrencyEUR, PaymentStatus: domain.PaymentStatusPaid},
		{Fee: "", Currency: domain.CurrencyEUR, PaymentStatus: domain.PaymentStatusPaid},
		{Fee: "free", Currency: domain.CurrencyEUR, PaymentStatus: domain.PaymentStatusPending},
		{Fee: "200", Currency: domain.CurrencyUSD, PaymentStatus: domain.PaymentStatusPaid},
		{Fee: "30", Currency: "", PaymentStatus: domain.PaymentStatusPending},
		{Fee: "0", Currency: domain.CurrencyTRY, PaymentStatus: domain.PaymentStatusPending},
		{Fee: "75", Currency: domain.CurrencyTRY, PaymentStatus: "PAID"},
	}

	totals := service.SumByCurrencyAndPaymentStatus(apps, []string{domain.CurrencyEUR, domain.CurrencyTRY})

	assert.True(t, totals.PaidIn(domain.CurrencyEUR).Equal(decimal.RequireFromString("1314.56")))
	assert.True(t, totals.PendingIn(domain.CurrencyEUR).IsZero())
	assert.True(t, totals.PendingIn(domain.CurrencyTRY).Equal(decimal.NewFromInt(75)))
	assert.True(t, totals.PaidIn(domain.CurrencyUSD).IsZero())
}

func TestSumByCurrencyAndPaymentStatus_ConfiguredCurrencies(t *testing.T) {
	apps := []domain.VisaApplication{
		{Fee: "160", Currency: domain.CurrencyUSD, PaymentStatus: domain.PaymentStatusPaid},
	}

	totals := service.SumByCurrencyAndPaymentStatus(apps, []string{domain.CurrencyUSD})

	assert.True(t, totals.PaidIn(domain.CurrencyUSD).Equal(decimal.NewFromInt(160)))
	assert.Len(t, totals.Paid, 1)
}

func TestApprovalRate(t *testing.T) {
	approved := domain.VisaApplication{Result: domain.VisaResultApproved}
	rejected := domain.VisaApplication{Result: domain.VisaResultRejected}
	pending := domain.VisaApplication{Result: domain.VisaResultPending}

	tests := []struct {
		name     string
		apps     []domain.VisaApplication
		expected int
	}{
		{name: "empty", apps: nil, expected: 0},
		{name: "two of four", apps: []domain.VisaApplication{approved, approved, rejected, pending}, expected: 50},
		{name: "one of three rounds down", apps: []domain.VisaApplication{approved, rejected, pending}, expected: 33},
		{name: "two of three rounds up", apps: []domain.VisaApplication{approved, approved, pending}, expected: 67},
		{name: "all approved", apps: []domain.VisaApplication{approved}, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ApprovalRate(tt.apps))
		})
	}
}

func TestCountByStatus(t *testing.T) {
	counts := service.CountByStatus([]domain.VisaApplication{
		{Status: domain.VisaStatusSubmitted},
		{Status: domain.VisaStatusSubmitted},
		{Status: ""},
	})

	assert.Equal(t, 2, counts[domain.VisaStatusSubmitted])
	assert.Equal(t, 1, counts[domain.VisaStatusPreparing])
	assert.Equal(t, 0, counts[domain.VisaStatusCancelled])
	assert.Len(t, counts, len(domain.VisaStatuses))
}
