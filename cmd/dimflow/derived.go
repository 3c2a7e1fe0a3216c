package main

import (
	"github.com/spf13/cobra"
)

func derivedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derived <expression>",
		Short: "Show the named units equivalent to a quantity",
		Example: `  dimflow derived 5 kg*m^2/s^2`,
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

			r, err := newRenderer(cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}
			return r.Derived(eng.DerivedUnits(q))
		},
	}
}
