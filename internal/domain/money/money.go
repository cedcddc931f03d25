// Package money represents monetary amounts as integer cents.
//
// The wire format is a plain JSON number with at most two fraction
// digits ("100", "12.5", "0.07"). Parsing into integer cents keeps the
// split-sum equality check exact; floating point never enters the
// arithmetic.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in minor units (1/100 of the currency unit).
type Cents int64

var (
	// ErrNotNumeric is returned when the input is not a JSON number.
	ErrNotNumeric = errors.New("amount must be a number")
	// ErrTooPrecise is returned for more than two fraction digits.
	ErrTooPrecise = errors.New("amount must have at most 2 decimal places")
)

// Parse converts a JSON number into cents.
//
// Accepted forms: "123", "-4", "12.5", "0.07". Scientific notation and
// more than two fraction digits are rejected.
func Parse(n json.Number) (Cents, error) {
	s := string(n)
	if s == "" {
		return 0, ErrNotNumeric
	}
	if strings.ContainsAny(s, "eE") {
		return 0, ErrTooPrecise
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrNotNumeric
	}
	if len(frac) > 2 {
		return 0, ErrTooPrecise
	}

	units := int64(0)
	if whole != "" {
		v, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, ErrNotNumeric
		}
		units = v
	}

	cents := units * 100
	if frac != "" {
		// "5" means 50 cents, "05" means 5 cents.
		v, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrNotNumeric
		}
		if len(frac) == 1 {
			v *= 10
		}
		cents += v
	}
	if neg {
		cents = -cents
	}
	return Cents(cents), nil
}

// ParseRaw decodes a raw JSON value and converts it to cents.
// A value that is not a JSON number yields ErrNotNumeric.
func ParseRaw(raw json.RawMessage) (Cents, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, ErrNotNumeric
	}
	return Parse(n)
}

// String renders the amount as a decimal number ("100", "12.5", "-0.07").
func (c Cents) String() string {
	neg := c < 0
	v := int64(c)
	if neg {
		v = -v
	}
	units, rem := v/100, v%100

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(units, 10))
	switch {
	case rem == 0:
		// whole amount, no fraction
	case rem%10 == 0:
		fmt.Fprintf(&b, ".%d", rem/10)
	default:
		fmt.Fprintf(&b, ".%02d", rem)
	}
	return b.String()
}

// MarshalJSON renders the amount as a JSON number.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON parses a JSON number into cents.
func (c *Cents) UnmarshalJSON(data []byte) error {
	v, err := ParseRaw(data)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
