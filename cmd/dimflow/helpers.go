package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/dimflow/internal/cli"
	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/config"
	"github.com/Veraticus/dimflow/internal/engine"
	"github.com/Veraticus/dimflow/internal/model"
	"github.com/Veraticus/dimflow/internal/quantity"
	"github.com/Veraticus/dimflow/internal/storage"
)

// currentConfig returns the loaded configuration, or defaults when the root
// pre-run did not execute.
func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	return &config.Config{
		LogLevel:  "info",
		LogFormat: "console",
		Output:    config.OutputTable,
		Precision: quantity.DefaultPrecision,
		Simplify:  true,
		Derived:   true,
	}
}

// openCatalog opens the configured catalog and seeds it with the built-in
// units on first use.
func openCatalog(ctx context.Context, cfg *config.Config) (*storage.SQLiteCatalog, error) {
	if !cfg.CatalogEnabled {
		return nil, common.NewUserError("the unit catalog is disabled", common.ErrMissingConfig)
	}

	catalog, err := storage.Open(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	seeded, err := catalog.SeedIfEmpty(ctx, quantity.BuiltinDefinitions())
	if err != nil {
		closeCatalog(catalog)
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	common.LogDebug("catalog opened", common.Fields{
		"path":   catalog.Path(),
		"seeded": seeded,
	})
	return catalog, nil
}

func closeCatalog(catalog *storage.SQLiteCatalog) {
	if err := catalog.Close(); err != nil {
		common.LogError(err, "failed to close catalog", common.Fields{"path": catalog.Path()})
	}
}

// loadRegistry builds the unit registry from the catalog, or from the
// built-in table when the catalog is disabled.
func loadRegistry(ctx context.Context, cfg *config.Config) (*quantity.Registry, error) {
	if !cfg.CatalogEnabled {
		return quantity.DefaultRegistry(), nil
	}

	catalog, err := openCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeCatalog(catalog)

	defs, err := catalog.Definitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	return quantity.NewRegistry(defs)
}

func newEvaluator(ctx context.Context, cfg *config.Config) (*quantity.Evaluator, error) {
	registry, err := loadRegistry(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return quantity.NewEvaluator(registry,
		quantity.WithSimplify(cfg.Simplify),
		quantity.WithPrecision(cfg.Precision),
	), nil
}

func newEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, error) {
	eval, err := newEvaluator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return engine.NewWithConfig(eval, engine.Config{
		MaxOptions:     cfg.MaxOptions,
		IncludeDerived: cfg.Derived,
	}), nil
}

func newRenderer(w io.Writer, cfg *config.Config) (*cli.Renderer, error) {
	r, err := cli.NewRenderer(w, cfg.Output)
	if err != nil {
		return nil, err
	}
	return r.WithPrecision(cfg.Precision), nil
}

// evaluate turns evaluator failures into messages fit for the terminal.
func evaluate(e *engine.Engine, expr string) (model.Quantity, error) {
	q, err := e.Evaluate(expr)
	if err == nil {
		return q, nil
	}

	var dimensionless *common.DimensionlessError
	if errors.As(err, &dimensionless) {
		return model.Quantity{}, common.NewUserError(fmt.Sprintf("%q has no units", expr), err)
	}
	return model.Quantity{}, common.NewUserError(engine.InvalidExpression, err)
}

// parseUnitFlags reads DIMENSION=unit pairs. Dimension keys are case-insensitive.
func parseUnitFlags(values []string) (model.Selection, error) {
	sel := model.Selection{}
	for _, v := range values {
		dim, unit, ok := strings.Cut(v, "=")
		dim, unit = strings.TrimSpace(dim), strings.TrimSpace(unit)
		if !ok || dim == "" || unit == "" {
			return nil, common.NewUserError(fmt.Sprintf("invalid unit choice %q, expected DIMENSION=unit", v), nil)
		}
		sel.Set(model.SelectedUnit{Dimension: model.BaseDimension(strings.ToUpper(dim)), Unit: unit})
	}
	return sel, nil
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
