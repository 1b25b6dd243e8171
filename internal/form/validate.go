package form

import (
	"cmp"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted date format.
const DateLayout = "2006-01-02"

// Required returns the trimmed value or fails with msg when it is empty.
func Required(raw, msg string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", invalid(msg)
	}
	return v, nil
}

// Number parses a finite float.
func Number(raw, msg string) (float64, error) {
	v, err := Required(raw, msg)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid(msg)
	}
	return f, nil
}

// PositiveNumber parses a float strictly greater than zero.
func PositiveNumber(raw, msg string) (float64, error) {
	f, err := Number(raw, msg)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, invalid(msg)
	}
	return f, nil
}

// MaxMagnitude bounds free-form numeric inputs so derived values stay finite
// and exact to the cent.
const MaxMagnitude = 1e12

// AtMost fails with msg when |v| is greater than limit.
func AtMost(v, limit float64, msg string) (float64, error) {
	if math.Abs(v) > limit {
		return 0, invalid(msg)
	}
	return v, nil
}

// NonNegativeNumber parses a float >= 0.
func NonNegativeNumber(raw, msg string) (float64, error) {
	f, err := Number(raw, msg)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, invalid(msg)
	}
	return f, nil
}

// Integer parses a base-10 int.
func Integer(raw, msg string) (int, error) {
	v, err := Required(raw, msg)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid(msg)
	}
	return n, nil
}

// PositiveInteger parses an int strictly greater than zero.
func PositiveInteger(raw, msg string) (int, error) {
	return IntRange(raw, 1, math.MaxInt, msg)
}

// IntRange parses an int within [lo, hi].
func IntRange(raw string, lo, hi int, msg string) (int, error) {
	n, err := Integer(raw, msg)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, invalid(msg)
	}
	return n, nil
}

// Date parses a YYYY-MM-DD date in UTC.
func Date(raw, msg string) (time.Time, error) {
	v, err := Required(raw, msg)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, invalid(msg)
	}
	return t, nil
}

// PastDate parses a date that is not after the calendar day of now.
func PastDate(raw string, now time.Time, msg string) (time.Time, error) {
	t, err := Date(raw, msg)
	if err != nil {
		return time.Time{}, err
	}
	if t.After(Day(now)) {
		return time.Time{}, invalid(msg)
	}
	return t, nil
}

// Day truncates t to its calendar day, expressed in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StrictlyLess fails unless lo < hi.
func StrictlyLess[T cmp.Ordered](lo, hi T, msg string) error {
	if lo < hi {
		return nil
	}
	return invalid(msg)
}

// YesNo parses y/yes/true/1 and n/no/false/0. An empty value is no.
func YesNo(raw, msg string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "n", "no", "false", "0":
		return false, nil
	case "y", "yes", "true", "1":
		return true, nil
	}
	return false, invalid(msg)
}
