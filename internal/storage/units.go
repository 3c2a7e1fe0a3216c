package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/model"
)

// Source records where a catalog unit came from.
type Source string

// Unit sources.
const (
	SourceBuiltin Source = "BUILTIN"
	SourceUser    Source = "USER"
)

// CatalogUnit is a stored unit definition with its source.
type CatalogUnit struct {
	Source Source
	model.UnitDefinition
}

// SaveUnit inserts or replaces a unit definition.
func (c *SQLiteCatalog) SaveUnit(ctx context.Context, def model.UnitDefinition, source Source) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDefinition(&def); err != nil {
		return err
	}
	if err := validateSource(source); err != nil {
		return err
	}

	return c.saveUnit(ctx, c.db, def, source)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (c *SQLiteCatalog) saveUnit(ctx context.Context, db execer, def model.UnitDefinition, source Source) error {
	sig, err := json.Marshal(def.Signature)
	if err != nil {
		return fmt.Errorf("failed to encode signature for %q: %w", def.Symbol, err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT OR REPLACE INTO units (symbol, name, dimension, signature, factor, si_offset, prefixable, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		def.Symbol, def.Name, string(def.Dimension), string(sig), def.Factor, def.Offset, def.Prefixable, string(source),
	)
	if err != nil {
		return fmt.Errorf("failed to save unit %q: %w", def.Symbol, err)
	}
	return nil
}

// DeleteUnit removes a user-defined unit.
func (c *SQLiteCatalog) DeleteUnit(ctx context.Context, symbol string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(symbol, "symbol"); err != nil {
		return err
	}

	var source string
	err := c.db.QueryRowContext(ctx, `SELECT source FROM units WHERE symbol = ?`, symbol).Scan(&source)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrUnitNotFound, symbol)
	}
	if err != nil {
		return fmt.Errorf("failed to look up unit %q: %w", symbol, err)
	}
	if Source(source) == SourceBuiltin {
		return fmt.Errorf("%w: %s", ErrBuiltinProtect, symbol)
	}

	if _, err := c.db.ExecContext(ctx, `DELETE FROM units WHERE symbol = ?`, symbol); err != nil {
		return fmt.Errorf("failed to delete unit %q: %w", symbol, err)
	}
	return nil
}

// Units returns every stored unit ordered by symbol.
func (c *SQLiteCatalog) Units(ctx context.Context) ([]CatalogUnit, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT symbol, name, dimension, signature, factor, si_offset, prefixable, source
		FROM units
		ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var units []CatalogUnit
	for rows.Next() {
		var (
			u         CatalogUnit
			dimension string
			signature string
			source    string
		)
		if err := rows.Scan(&u.Symbol, &u.Name, &dimension, &signature, &u.Factor, &u.Offset, &u.Prefixable, &source); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		if err := json.Unmarshal([]byte(signature), &u.Signature); err != nil {
			return nil, fmt.Errorf("failed to decode signature for %q: %w", u.Symbol, err)
		}
		u.Dimension = model.BaseDimension(dimension)
		u.Source = Source(source)
		units = append(units, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating units: %w", err)
	}
	return units, nil
}

// Definitions returns every stored definition ordered by symbol. An empty
// catalog reports common.ErrCatalogEmpty.
func (c *SQLiteCatalog) Definitions(ctx context.Context) ([]model.UnitDefinition, error) {
	units, err := c.Units(ctx)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, common.ErrCatalogEmpty
	}

	defs := make([]model.UnitDefinition, len(units))
	for i, u := range units {
		defs[i] = u.UnitDefinition
	}
	return defs, nil
}

// Count returns the number of stored units.
func (c *SQLiteCatalog) Count(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM units`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count units: %w", err)
	}
	return n, nil
}

// SeedIfEmpty stores defs as builtin units when the catalog has none.
// It reports whether seeding happened.
func (c *SQLiteCatalog) SeedIfEmpty(ctx context.Context, defs []model.UnitDefinition) (bool, error) {
	n, err := c.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range defs {
		if err := validateDefinition(&defs[i]); err != nil {
			return false, err
		}
		if err := c.saveUnit(ctx, tx, defs[i], SourceBuiltin); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}

	common.LogInfo("Seeded unit catalog", common.Fields{
		"path":  c.dbPath,
		"units": len(defs),
	})
	return true, nil
}
