package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/dimflow/internal/common"
)

// errRecompose marks a recomposition whose failure has already been printed.
var errRecompose = errors.New("recomposition failed")

func recomposeCmd() *cobra.Command {
	var units []string

	cmd := &cobra.Command{
		Use:   "recompose <expression>",
		Short: "Express a quantity in chosen base units",
		Long: `Recompose a quantity into one unit per base dimension. Compound units are
decomposed first (pressure into force and length, energy and power into
mass, length and time), and every resulting dimension needs a unit.`,
		Example: `  dimflow recompose 2 N/m^2 --unit FORCE=lbf --unit LENGTH=ft
  dimflow recompose "5 kWh" -u mass=lb -u length=ft -u time=min`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			sel, err := parseUnitFlags(units)
			if err != nil {
				return err
			}

			eng, err := newEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			rec := eng.RecomputeAll(joinArgs(args), sel)
			if rec.Err != nil {
				return common.NewUserError(rec.Value, rec.Err)
			}

			for _, dim := range sel.Keys() {
				if _, kept := rec.Selection.Get(dim); !kept {
					slog.Warn("ignoring unit for a dimension the quantity does not use", "dimension", dim)
				}
			}

			r, err := newRenderer(cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}
			if err := r.Result(rec.Value, rec.Required, rec.Result); err != nil {
				return err
			}
			if !rec.Result.OK() {
				return errRecompose
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&units, "unit", "u", nil, "target unit as DIMENSION=unit (repeatable)")
	return cmd
}
