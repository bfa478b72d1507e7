// Package money parses, rounds and formats currency values.
//
// Every amount in MorningMoney is a decimal.Decimal. Binary floating point is
// never used for currency, so sums over many entries stay exact to the cent.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/morningmoney/internal/apperrors"
)

// Places is the number of fractional digits kept for currency.
const Places = 2

// Symbol is the currency symbol used by Format.
const Symbol = "R"

var sanitizer = strings.NewReplacer("R", "", "$", "", ",", "")

// Sanitize strips currency symbols, thousands separators and surrounding whitespace.
func Sanitize(s string) string {
	return strings.TrimSpace(sanitizer.Replace(s))
}

// Parse converts user input such as "R1,234.50" into a decimal.
// A string that is empty or non-numeric after sanitizing is rejected.
func Parse(s string) (decimal.Decimal, error) {
	clean := Sanitize(s)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("%q: %w", s, apperrors.ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, apperrors.ErrInvalidNumber)
	}
	return d, nil
}

// ParsePercent parses a percentage such as "11", "11.5" or "11.5%".
func ParsePercent(s string) (decimal.Decimal, error) {
	return Parse(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

// ParseYear parses a calendar year.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("%q: %w", s, apperrors.ErrInvalidYear)
	}
	return year, nil
}

// Round rounds to cents. Ties round away from zero (half-up).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Format renders d as R1,234.56 (or -R1,234.56).
func Format(d decimal.Decimal) string {
	fixed := Round(d).StringFixed(Places)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + Symbol + b.String() + "." + frac
}
