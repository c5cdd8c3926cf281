// Package numfmt renders numbers and dates the way the dashboard shows them:
// en-US digit grouping with at most three fraction digits, and M/D/YYYY
// calendar dates.
package numfmt

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Rupee prefixes revenue and spend on the dashboard.
const Rupee = "₹"

var printer = message.NewPrinter(language.AmericanEnglish)

// Locale formats v with thousands separators and up to three decimals,
// trimming trailing zeros: 1234.5 → "1,234.5", 1e6 → "1,000,000".
func Locale(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// Money formats v with Locale and prefixes symbol.
func Money(symbol string, v float64) string {
	return symbol + Locale(v)
}

// dateLayouts are tried in order when reading a series date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ShortDate renders a server date as M/D/YYYY using the calendar day the
// server sent, without shifting it through a time zone. Values that do not
// parse are returned unchanged.
func ShortDate(raw string) string {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("1/2/2006")
		}
	}
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return raw
}
