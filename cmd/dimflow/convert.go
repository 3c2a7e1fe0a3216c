package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/dimflow/internal/common"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <expression>",
		Short: "List every compatible unit of a quantity",
		Long: `Evaluate a quantity and list, for each of its dimensions, the value of one
unit in every compatible unit, plus the named units it is equivalent to.`,
		Example: `  dimflow convert 2 N/m^2
  dimflow convert "10 km/h" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			eng, err := newEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			rec := eng.RecomputeAll(joinArgs(args), nil)
			if rec.Err != nil {
				return common.NewUserError(rec.Value, rec.Err)
			}

			r, err := newRenderer(cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}
			return r.Conversions(rec.Value, rec.Groups)
		},
	}
}
