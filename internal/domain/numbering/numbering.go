// Package numbering formats and parses human-readable estimate numbers.
//
// Numbers look like EST-2024-001: a fixed prefix, the calendar year the estimate was
// created in, and a per-year sequence zero-padded to three digits. Sequences past 999
// simply grow wider (EST-2024-1000); ordering is always done on the numeric sequence,
// never on the string.
package numbering

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const Prefix = "EST"

var ErrInvalidEstimateNumber = errors.New("invalid estimate number")

// Format renders the estimate number for the given year and sequence.
func Format(year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", Prefix, year, seq)
}

// YearPrefix is the prefix shared by every number issued in year, e.g. "EST-2024-".
func YearPrefix(year int) string {
	return fmt.Sprintf("%s-%d-", Prefix, year)
}

// Parse splits an estimate number into its year and sequence.
func Parse(number string) (year, seq int, err error) {
	parts := strings.Split(strings.TrimSpace(number), "-")
	if len(parts) != 3 || parts[0] != Prefix {
		return 0, 0, ErrInvalidEstimateNumber
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil || year <= 0 {
		return 0, 0, ErrInvalidEstimateNumber
	}
	if len(parts[2]) < 3 {
		return 0, 0, ErrInvalidEstimateNumber
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil || seq <= 0 {
		return 0, 0, ErrInvalidEstimateNumber
	}
	return year, seq, nil
}

// Next returns the sequence that follows last within a year. A zero last means no
// estimate has been issued yet for that year.
func Next(last int) int {
	if last < 0 {
		return 1
	}
	return last + 1
}
