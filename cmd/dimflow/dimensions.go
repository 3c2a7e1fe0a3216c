package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/dimflow/internal/cli"
	"github.com/Veraticus/dimflow/internal/engine"
)

func dimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dimensions <expression>",
		Aliases: []string{"dims"},
		Short:   "Show the base dimensions a quantity needs units for",
		Example: `  dimflow dimensions 4 J/(kg*K)`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			eng, err := newEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			q, err := evaluate(eng, joinArgs(args))
			if err != nil {
				return err
			}

			required := engine.RequiredDimensions(q)
			dims := make([]cli.DimensionExponent, 0, len(required))
			for _, dim := range required {
				dims = append(dims, cli.DimensionExponent{Dimension: dim, Exponent: engine.ExponentOf(q, dim)})
			}

			r, err := newRenderer(cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}
			return r.Dimensions(dims)
		},
	}
}
