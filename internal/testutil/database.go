// Package testutil provides shared fixtures for dimflow tests: seeded
// in-memory catalogs and ready-to-use engines.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/dimflow/internal/engine"
	"github.com/Veraticus/dimflow/internal/model"
	"github.com/Veraticus/dimflow/internal/quantity"
	"github.com/Veraticus/dimflow/internal/storage"
)

// SetupTestCatalog creates a migrated in-memory catalog seeded with defs.
// Cleanup is registered on t.
func SetupTestCatalog(t *testing.T, defs []model.UnitDefinition) *storage.SQLiteCatalog {
	t.Helper()

	catalog, err := storage.Open(context.Background(), storage.MemoryPath)
	if err != nil {
		t.Fatalf("failed to open test catalog: %v", err)
	}
	t.Cleanup(func() {
		_ = catalog.Close()
	})

	if len(defs) > 0 {
		if _, err := catalog.SeedIfEmpty(context.Background(), defs); err != nil {
			t.Fatalf("failed to seed test catalog: %v", err)
		}
	}
	return catalog
}

// NewEngine returns an engine over the built-in registry.
func NewEngine(t *testing.T, opts ...quantity.Option) *engine.Engine {
	t.Helper()
	return NewEngineWithRegistry(t, quantity.DefaultRegistry(), opts...)
}

// NewEngineWithRegistry returns an engine over r with derived units enabled.
func NewEngineWithRegistry(t *testing.T, r *quantity.Registry, opts ...quantity.Option) *engine.Engine {
	t.Helper()
	return engine.New(quantity.NewEvaluator(r, opts...))
}
