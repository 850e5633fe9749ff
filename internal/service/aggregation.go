package service

import (
	"math"

	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/pkg/utils"

	"github.com/shopspring/decimal"
)

// DefaultCurrencies are the symbols fee totals are tracked in
var DefaultCurrencies = []string{domain.CurrencyEUR, domain.CurrencyTRY}

// FeeTotals holds visa fee sums per currency, split by payment status
type FeeTotals struct {
	Paid    map[string]decimal.Decimal `json:"paid"`
	Pending map[string]decimal.Decimal `json:"pending"`
}

// PaidIn returns the paid total of currency, zero when untracked
func (t FeeTotals) PaidIn(currency string) decimal.Decimal {
	return t.Paid[currency]
}

// PendingIn returns the pending total of currency, zero when untracked
func (t FeeTotals) PendingIn(currency string) decimal.Decimal {
	return t.Pending[currency]
}

// SumByCurrencyAndPaymentStatus adds every parsable fee into its
// {paid, pending} x currency bucket. Fees that are missing or unparsable, and
// currencies not listed, contribute nothing.
func SumByCurrencyAndPaymentStatus(apps []domain.VisaApplication, currencies []string) FeeTotals {
	if currencies == nil {
		currencies = DefaultCurrencies
	}

	totals := FeeTotals{
		Paid:    make(map[string]decimal.Decimal, len(currencies)),
		Pending: make(map[string]decimal.Decimal, len(currencies)),
	}
	for _, c := range currencies {
		totals.Paid[c] = decimal.Zero
		totals.Pending[c] = decimal.Zero
	}

	for _, app := range apps {
		if _, tracked := totals.Paid[app.Currency]; !tracked {
			continue
		}
		fee, ok := utils.ParseAmountStrict(app.Fee)
		if !ok {
			continue
		}
		if app.IsPaid() {
			totals.Paid[app.Currency] = totals.Paid[app.Currency].Add(fee)
		} else {
			totals.Pending[app.Currency] = totals.Pending[app.Currency].Add(fee)
		}
	}

	return totals
}

// ApprovalRate is the rounded percentage of approved applications, 0 when
// there are none.
func ApprovalRate(apps []domain.VisaApplication) int {
	if len(apps) == 0 {
		return 0
	}

	approved := 0
	for _, app := range apps {
		if app.Result == domain.VisaResultApproved {
			approved++
		}
	}

	return int(math.Round(float64(approved) / float64(len(apps)) * 100))
}

// CountByStatus tallies applications per visa status. Every known status is
// present; unknown statuses are counted under their own value.
func CountByStatus(apps []domain.VisaApplication) map[string]int {
	counts := make(map[string]int, len(domain.VisaStatuses))
	for _, status := range domain.VisaStatuses {
		counts[status] = 0
	}
	for _, app := range apps {
		status := app.Status
		if status == "" {
			status = domain.VisaStatusPreparing
		}
		counts[status]++
	}
	return counts
}
