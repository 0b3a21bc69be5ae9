package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error in this package unwraps to one of them.
var (
	ErrValueIsInvalid            = errors.New("value is invalid")
	ErrValueIsOutOfRange         = errors.New("value is out of range")
	ErrValueIsRequired           = errors.New("value is required")
	ErrObjectNotFound            = errors.New("object not found")
	ErrObjectAlreadyExists       = errors.New("object already exists")
	ErrReferenceIsUnresolvable   = errors.New("reference is unresolvable")
	ErrStatusTransitionIsInvalid = errors.New("status transition is invalid")
)

// IsInvalidArgument reports whether err is one of the invalid-argument kinds:
// an invalid value or an out-of-range value.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) || errors.Is(err, ErrValueIsOutOfRange)
}

// ValueIsInvalidError describes a value that violates a field invariant.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError carrying the
// underlying reason the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError describes a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	err := NewValueIsOutOfRangeError(paramName, value, minValue, maxValue)
	err.Cause = cause
	return err
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError describes a missing required value or reference.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ObjectNotFoundError describes a lookup of an identifier that does not exist.
// ParamName names the kind of object (e.g. "parcel"), ID is the identifier used.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError describes an insert that collides with an existing
// identifier or unique business key.
type ObjectAlreadyExistsError struct {
	ParamName string
	Key       any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError.
func NewObjectAlreadyExistsError(paramName string, key any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Key: key}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError with a cause.
func NewObjectAlreadyExistsErrorWithCause(paramName string, key any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Key: key, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.Key)), e.Cause)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ReferenceIsUnresolvableError describes a by-name reference whose target does
// not exist when it is evaluated.
type ReferenceIsUnresolvableError struct {
	ParamName string
	Reference string
	Cause     error
}

// NewReferenceIsUnresolvableError creates a ReferenceIsUnresolvableError.
func NewReferenceIsUnresolvableError(paramName, reference string) *ReferenceIsUnresolvableError {
	return &ReferenceIsUnresolvableError{ParamName: paramName, Reference: reference}
}

// NewReferenceIsUnresolvableErrorWithCause creates a ReferenceIsUnresolvableError with a cause.
func NewReferenceIsUnresolvableErrorWithCause(
	paramName, reference string,
	cause error,
) *ReferenceIsUnresolvableError {
	return &ReferenceIsUnresolvableError{ParamName: paramName, Reference: reference, Cause: cause}
}

func (e *ReferenceIsUnresolvableError) Error() string {
	msg := fmt.Sprintf("%s: %s %q", ErrReferenceIsUnresolvable, e.ParamName, e.Reference)
	return withCause(msg, e.Cause)
}

func (e *ReferenceIsUnresolvableError) Unwrap() error {
	return ErrReferenceIsUnresolvable
}

// StatusTransitionIsInvalidError describes a lifecycle transition that the
// entity's state graph does not allow.
type StatusTransitionIsInvalidError struct {
	Entity string
	From   string
	To     string
}

// NewStatusTransitionIsInvalidError creates a StatusTransitionIsInvalidError.
func NewStatusTransitionIsInvalidError(entity string, from, to fmt.Stringer) *StatusTransitionIsInvalidError {
	return &StatusTransitionIsInvalidError{Entity: entity, From: from.String(), To: to.String()}
}

func (e *StatusTransitionIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrStatusTransitionIsInvalid, e.Entity, e.From, e.To)
}

func (e *StatusTransitionIsInvalidError) Unwrap() error {
	return ErrStatusTransitionIsInvalid
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// sanitize keeps error messages on a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
