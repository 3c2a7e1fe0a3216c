// Package engine implements the unit algebra and dimensional-analysis engine:
// classifying compound units, enumerating compatible and derived units, and
// recomposing a quantity under a user-chosen set of target units.
package engine

import (
	"log/slog"

	"github.com/Veraticus/dimflow/internal/model"
	"github.com/Veraticus/dimflow/internal/service"
)

// Engine builds conversion sets and recomposes quantities. It holds no mutable
// state; concurrent calls for different quantities need no locking.
type Engine struct {
	eval           service.Evaluator
	logger         *slog.Logger
	maxOptions     int
	includeDerived bool
}

// Config holds configuration options for the engine.
type Config struct {
	Logger *slog.Logger
	// MaxOptions caps the options kept per group after deduplication; 0 keeps all.
	MaxOptions     int
	IncludeDerived bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		IncludeDerived: true,
	}
}

// New creates an engine over eval with the default configuration.
func New(eval service.Evaluator) *Engine {
	return NewWithConfig(eval, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(eval service.Evaluator, config Config) *Engine {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		eval:           eval,
		logger:         logger,
		maxOptions:     config.MaxOptions,
		includeDerived: config.IncludeDerived,
	}
}

// Evaluate parses an expression through the underlying evaluator.
func (e *Engine) Evaluate(expr string) (model.Quantity, error) {
	return e.eval.Evaluate(expr)
}

// Format renders "<number> <unit>" through the underlying evaluator.
func (e *Engine) Format(value float64, unit string) string {
	return e.eval.Format(value, unit)
}
