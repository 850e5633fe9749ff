package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyStripper = strings.NewReplacer(
	"€", "",
	"₺", "",
	"$", "",
	"£", "",
	"TL", "",
)

// ParseAmount parses user-entered money text such as "€1.234,56" or "50 ₺".
// Anything that is not a number yields zero.
func ParseAmount(text string) decimal.Decimal {
	amount, _ := ParseAmountStrict(text)
	return amount
}

// ParseAmountStrict is ParseAmount but also reports whether a number was
// present, so a waived fee ("0") can be told apart from a missing one.
func ParseAmountStrict(text string) (decimal.Decimal, bool) {
	cleaned := currencyStripper.Replace(text)
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" {
		return decimal.Zero, false
	}

	// With a decimal comma present, dots can only be thousands separators.
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}

	return amount, true
}

// FormatAmount renders an amount with the currency symbol using the number
// conventions of lang, e.g. "₺1.234,56" for Turkish.
func FormatAmount(amount decimal.Decimal, symbol string, lang language.Tag) string {
	value, _ := amount.Round(2).Float64()
	return symbol + message.NewPrinter(lang).Sprintf("%.2f", value)
}
