// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Common application errors.
var (
	// Evaluation errors.
	ErrInvalidExpression = errors.New("invalid expression")
	ErrDimensionless     = errors.New("expression has no physical unit")
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrUnknownDimension  = errors.New("unknown dimension")

	// Conversion errors.
	ErrIncompatibleUnits = errors.New("incompatible units")
	ErrMissingUnits      = errors.New("missing units")

	// Catalog errors.
	ErrCatalogEmpty = errors.New("unit catalog is empty")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IncompatibleError reports a conversion between dimensionally mismatched units.
type IncompatibleError struct {
	From string
	To   string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

// Is matches ErrIncompatibleUnits.
func (e *IncompatibleError) Is(target error) bool {
	return target == ErrIncompatibleUnits
}

// UnknownUnitError reports a symbol absent from the registry.
type UnknownUnitError struct {
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Symbol)
}

// Is matches ErrUnknownUnit.
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}

// MissingUnitsError lists dimensions that have no selected target unit.
type MissingUnitsError struct {
	Dimensions []string
}

func (e *MissingUnitsError) Error() string {
	return "missing units for: " + strings.Join(e.Dimensions, ", ")
}

// Is matches ErrMissingUnits.
func (e *MissingUnitsError) Is(target error) bool {
	return target == ErrMissingUnits
}

// DimensionlessError carries the numeric value of an expression that
// evaluated to a plain number.
type DimensionlessError struct {
	Value float64
}

func (e *DimensionlessError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDimensionless, strconv.FormatFloat(e.Value, 'g', -1, 64))
}

// Is matches ErrDimensionless.
func (e *DimensionlessError) Is(target error) bool {
	return target == ErrDimensionless
}
