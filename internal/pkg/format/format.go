// Package format renders monetary amounts and hour values for display and
// export. Amounts are presented in Malaysian Ringgit.
package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencyPrinter = message.NewPrinter(language.English)

// Currency renders a monetary amount as "RM 1,234.50": two decimal digits
// with comma thousands separators. A nil amount renders as "RM 0.00".
func Currency(amount *float64) string {
	value := 0.0
	if amount != nil {
		value = *amount
	}
	return currencyPrinter.Sprintf("RM %v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Hours renders an hours value with exactly one decimal digit and no
// thousands separators. A nil value renders as "0.0". Rounding follows
// strconv.FormatFloat: round to nearest, ties to even (7.25 -> "7.2").
func Hours(hours *float64) string {
	value := 0.0
	if hours != nil {
		value = *hours
	}
	return strconv.FormatFloat(value, 'f', 1, 64)
}
