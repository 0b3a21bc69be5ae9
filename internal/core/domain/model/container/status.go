package container

import (
	"fmt"
	"strings"

	"parcelrouting/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipping container.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Pending is the status of a freshly imported container.
	Pending
	// Processing indicates at least one parcel is being handled.
	Processing
	// Processed indicates every parcel was handled by its departments.
	Processed
	// Shipped indicates the container left the distribution center.
	Shipped
	// Delivered is terminal.
	Delivered
	// Failed is terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Processed:  "Processed",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Failed:     "Failed",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Processing, Processed, Shipped, Delivered, Failed}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a status name, case-insensitively, into a Status.
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(str, strings.TrimSpace(name)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanTransitionTo reports whether the state graph allows moving from s to
// next: one step forward along the lifecycle, or to Failed.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil || s.IsTerminal() {
		return false
	}
	return next == Failed || next == s+1
}
