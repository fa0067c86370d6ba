// Package core provides the ledger data model plus amount parsing and
// formatting used by the presentation layer.
package core

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// ParseAmount converts user input into a signed amount.
//
// It accepts an optional leading sign and either a dot (12.34) or a comma
// (12,34) as decimal separator. Thousands separators, exponents and the
// NaN/Inf spellings accepted by strconv are rejected.
//
// Examples:
//
//	ParseAmount("-150")   -> -150, nil
//	ParseAmount("+12,50") -> 12.5, nil
//	ParseAmount("abc")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" || strings.Count(digits, ".") > 1 {
		return 0, ErrInvalidAmount
	}
	hasDigit := false
	for _, r := range digits {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.':
		default:
			return 0, ErrInvalidAmount
		}
	}
	if !hasDigit {
		return 0, ErrInvalidAmount
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatAmount renders the magnitude of n with thousands grouping and two
// decimals. Callers prepend the sign and currency symbol.
func FormatAmount(n float64) string {
	return humanize.FormatFloat("#,###.##", math.Abs(n))
}
