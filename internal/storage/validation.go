// Package storage persists the unit catalog in SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/dimflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidUnit    = errors.New("invalid unit definition")
	ErrInvalidSource  = errors.New("invalid unit source")
	ErrUnitNotFound   = errors.New("unit not found")
	ErrBuiltinProtect = errors.New("builtin units cannot be removed")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateDefinition(def *model.UnitDefinition) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUnit, err)
	}
	return nil
}

func validateSource(source Source) error {
	switch source {
	case SourceBuiltin, SourceUser:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}
}
