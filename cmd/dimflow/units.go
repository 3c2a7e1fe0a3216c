package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/dimflow/internal/cli"
	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/model"
	"github.com/Veraticus/dimflow/internal/storage"
)

func unitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units [DIMENSION]",
		Short: "List registered units",
		Long: `List the registered units, optionally only those of one dimension.
Units come from the catalog, or from the built-in table with --no-catalog.`,
		Example: `  dimflow units
  dimflow units pressure`,
		Args: cobra.MaximumNArgs(1),
		RunE: runListUnits,
	}

	cmd.AddCommand(unitsAddCmd())
	cmd.AddCommand(unitsRemoveCmd())
	return cmd
}

func runListUnits(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()

	var dim model.BaseDimension
	if len(args) == 1 {
		dim = model.BaseDimension(strings.ToUpper(args[0]))
	}

	var rows []cli.UnitRow
	if cfg.CatalogEnabled {
		catalog, err := openCatalog(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeCatalog(catalog)

		units, err := catalog.Units(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list units: %w", err)
		}
		for _, u := range units {
			rows = append(rows, unitRow(u.UnitDefinition, string(u.Source)))
		}
	} else {
		eval, err := newEvaluator(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		for _, d := range eval.Registry().Definitions() {
			rows = append(rows, unitRow(d, string(storage.SourceBuiltin)))
		}
	}

	if dim != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if row.Dimension == dim {
				filtered = append(filtered, row)
			}
		}
		if len(filtered) == 0 {
			return common.NewUserError(fmt.Sprintf("no units in dimension %s", dim), common.ErrUnknownDimension)
		}
		rows = filtered
	}

	r, err := newRenderer(cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}
	return r.Units(rows)
}

func unitRow(d model.UnitDefinition, source string) cli.UnitRow {
	return cli.UnitRow{
		Symbol:    d.Symbol,
		Name:      d.Name,
		Dimension: d.Dimension,
		Factor:    d.Factor,
		Source:    source,
	}
}

func unitsAddCmd() *cobra.Command {
	var (
		name      string
		dimension string
	)

	cmd := &cobra.Command{
		Use:   "add <symbol> <expression>",
		Short: "Define a custom unit in the catalog",
		Long: `Define a unit as a multiple of existing units. The dimension is inferred
from the expression unless --dimension names one.`,
		Example: `  dimflow units add furlong 201.168 m --name furlong
  dimflow units add fortnight 14 d`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()
			ctx := cmd.Context()

			catalog, err := openCatalog(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeCatalog(catalog)

			eval, err := newEvaluator(ctx, cfg)
			if err != nil {
				return err
			}

			def, err := eval.Define(args[0], name, joinArgs(args[1:]), model.BaseDimension(strings.ToUpper(dimension)))
			if err != nil {
				return common.NewUserError(fmt.Sprintf("cannot define %s", args[0]), err)
			}

			if err := catalog.SaveUnit(ctx, def, storage.SourceUser); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s (%s) = %s", def.Symbol, def.Dimension, joinArgs(args[1:]))))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "descriptive name (defaults to the symbol)")
	cmd.Flags().StringVar(&dimension, "dimension", "", "dimension to file the unit under")
	return cmd
}

func unitsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <symbol>",
		Aliases: []string{"rm"},
		Short:   "Remove a custom unit from the catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			catalog, err := openCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeCatalog(catalog)

			if err := catalog.DeleteUnit(cmd.Context(), args[0]); err != nil {
				return common.NewUserError(fmt.Sprintf("cannot remove %s", args[0]), err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Removed "+args[0]))
			return nil
		},
	}
}
