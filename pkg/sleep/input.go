package sleep

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/d-kuro/snooze/pkg/duration"
)

// Input is a value SmartSleep knows how to wait for.
// It is implemented by Millis, Text and Span only.
type Input interface {
	// ShouldSleep reports whether a wait should be attempted at all.
	ShouldSleep() bool
	// Duration resolves the input to a non-negative duration.
	Duration() (time.Duration, error)

	input()
}

// Millis is a signed number of milliseconds.
type Millis int

// Text is a duration string handled by duration.Parse.
type Text string

// Span is an already resolved duration.
type Span time.Duration

func (Millis) input() {}
func (Text) input()   {}
func (Span) input()   {}

// ShouldSleep returns false for zero and negative values.
func (m Millis) ShouldSleep() bool {
	return m > 0
}

// Duration returns m milliseconds, or zero when m is not positive.
func (m Millis) Duration() (time.Duration, error) {
	if m <= 0 {
		return 0, nil
	}
	return time.Duration(m) * time.Millisecond, nil
}

// ShouldSleep returns false only when t is a plain integer that is zero or
// negative. Any other text is left for Duration to resolve, so "0s" is not
// skipped here.
func (t Text) ShouldSleep() bool {
	if n, err := strconv.ParseInt(string(t), 10, 64); err == nil {
		return n > 0
	}
	return true
}

// Duration parses t.
func (t Text) Duration() (time.Duration, error) {
	return duration.Parse(string(t))
}

// ShouldSleep returns false for a zero span.
func (s Span) ShouldSleep() bool {
	return s != 0
}

// Duration returns s unchanged.
func (s Span) Duration() (time.Duration, error) {
	return time.Duration(s), nil
}

// From converts a dynamically typed value, such as one decoded from a
// config file, into an Input.
func From(v any) (Input, error) {
	switch val := v.(type) {
	case Input:
		return val, nil
	case time.Duration:
		return Span(val), nil
	case string:
		return Text(val), nil
	case int:
		return Millis(val), nil
	case int8:
		return Millis(val), nil
	case int16:
		return Millis(val), nil
	case int32:
		return Millis(val), nil
	case int64:
		if val > math.MaxInt || val < math.MinInt {
			return nil, &duration.Error{Err: duration.ErrNumberOutOfRange, Input: strconv.FormatInt(val, 10)}
		}
		return Millis(val), nil
	case uint:
		return fromUnsigned(uint64(val))
	case uint8:
		return Millis(val), nil
	case uint16:
		return Millis(val), nil
	case uint32:
		return fromUnsigned(uint64(val))
	case uint64:
		return fromUnsigned(val)
	default:
		return nil, &duration.Error{Err: duration.ErrParse, Input: fmt.Sprintf("%v (%T)", v, v)}
	}
}

func fromUnsigned(val uint64) (Input, error) {
	if val > math.MaxInt {
		return nil, &duration.Error{Err: duration.ErrNumberOutOfRange, Input: strconv.FormatUint(val, 10)}
	}
	return Millis(val), nil
}
