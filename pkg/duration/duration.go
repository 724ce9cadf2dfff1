// Package duration parses human-friendly duration strings such as "500",
// "2s", "1.5m" or "1h 2m 3s" into a non-negative time.Duration.
//
// Bare integers are milliseconds. Non-positive values and empty input
// resolve to zero instead of an error.
package duration

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxMillis is the largest millisecond count a time.Duration can hold.
const maxMillis = math.MaxInt64 / int64(time.Millisecond)

var (
	// integerUnitRegex matches a single integer magnitude with a unit, e.g. "5 min".
	integerUnitRegex = regexp.MustCompile(`^(\d+)\s*([a-z]+)$`)

	// fractionalUnitRegex matches a single decimal magnitude with a unit, e.g. "1.5s" or ".5m".
	fractionalUnitRegex = regexp.MustCompile(`^(\d*\.?\d+)\s*([a-z]+)$`)

	// multiUnitRegex matches one <digits><unit> run. The optional leading
	// group captures a fractional part so that it can be rejected.
	multiUnitRegex = regexp.MustCompile(`(\d*\.)?(\d+)\s*([a-z]+)`)
)

// Parse converts s into a duration.
//
// Rules are tried in order and the first one that consumes the whole input
// wins: a bare integer in milliseconds, a single integer magnitude with a
// unit, a single fractional magnitude with a second or minute unit, and
// finally a sequence of integer runs such as "1h2m3s". Unknown units inside
// a sequence are skipped. Only bare integers carry a sign; any other
// non-digit prefix, a leading '-' included, is ignored by the sequence scan.
func Parse(s string) (time.Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}

	if d, ok, err := parseBareInteger(s); ok || err != nil {
		return d, err
	}
	if d, ok, err := parseIntegerUnit(s); ok || err != nil {
		return d, err
	}
	if d, ok, err := parseFractionalUnit(s); ok || err != nil {
		return d, err
	}
	if d, ok, err := parseMultiUnit(s); ok || err != nil {
		return d, err
	}

	return 0, invalid(s)
}

func parseBareInteger(s string) (time.Duration, bool, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, outOfRange(s)
		}
		return 0, false, nil
	}
	if n <= 0 {
		return 0, true, nil
	}
	if n > maxMillis {
		return 0, false, outOfRange(s)
	}
	return time.Duration(n) * time.Millisecond, true, nil
}

func parseIntegerUnit(s string) (time.Duration, bool, error) {
	matches := integerUnitRegex.FindStringSubmatch(s)
	if len(matches) != 3 {
		return 0, false, nil
	}
	factor, ok := integerUnits[matches[2]]
	if !ok {
		return 0, false, nil
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, false, outOfRange(s)
	}
	if value <= 0 {
		return 0, true, nil
	}

	d, err := fromMillis(float64(value)*float64(factor), s)
	return d, err == nil, err
}

func parseFractionalUnit(s string) (time.Duration, bool, error) {
	matches := fractionalUnitRegex.FindStringSubmatch(s)
	if len(matches) != 3 {
		return 0, false, nil
	}
	factor, ok := fractionalUnits[matches[2]]
	if !ok {
		return 0, false, nil
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, false, nil
	}
	if value <= 0 {
		return 0, true, nil
	}

	d, err := fromMillis(value*float64(factor), s)
	return d, err == nil, err
}

// parseMultiUnit sums every <digits><unit> run in s. It reports no match
// when no run has a known unit, or when any run carries a fractional
// magnitude.
func parseMultiUnit(s string) (time.Duration, bool, error) {
	var total int64
	found := false

	for _, m := range multiUnitRegex.FindAllStringSubmatch(s, -1) {
		if m[1] != "" {
			return 0, false, nil
		}

		factor, ok := integerUnits[m[3]]
		if !ok {
			continue
		}

		value, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil || value > maxMillis/factor {
			return 0, false, outOfRange(s)
		}

		total += value * factor
		if total > maxMillis {
			return 0, false, outOfRange(s)
		}
		found = true
	}

	if !found {
		return 0, false, nil
	}
	return time.Duration(total) * time.Millisecond, true, nil
}

// fromMillis truncates ms toward zero and converts it to a duration.
func fromMillis(ms float64, input string) (time.Duration, error) {
	if ms > float64(maxMillis) {
		return 0, outOfRange(input)
	}
	return time.Duration(int64(ms)) * time.Millisecond, nil
}
