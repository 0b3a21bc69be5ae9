package rule

import (
	"fmt"
	"strings"

	"parcelrouting/internal/pkg/errs"
)

// Type is the classification axis of a rule.
type Type int

const (
	// UnknownType catches uninitialized values.
	UnknownType Type = iota
	// Weight rules classify by parcel weight in kilograms.
	Weight
	// Value rules classify by declared parcel value.
	Value
)

func (t Type) String() string {
	switch t {
	case Weight:
		return "Weight"
	case Value:
		return "Value"
	default:
		return "Unknown"
	}
}

// Validate fails for UnknownType and out-of-range values.
func (t Type) Validate() error {
	if t != Weight && t != Value {
		return errs.NewValueIsInvalidErrorWithCause("rule type", fmt.Errorf("%d is not a valid rule type", t))
	}
	return nil
}

// ParseType parses "Weight" or "Value", case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weight":
		return Weight, nil
	case "value":
		return Value, nil
	default:
		return UnknownType, errs.NewValueIsInvalidErrorWithCause("rule type", fmt.Errorf("%q is not a valid rule type", s))
	}
}
