package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/dimflow/internal/tui"
	"github.com/Veraticus/dimflow/internal/tui/themes"
)

func exploreCmd() *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "explore [expression]",
		Short: "Explore conversions and recompose interactively",
		Long: `Open a terminal explorer. Type an expression to see its conversions, then
pick one unit per base dimension to recompose the value live.`,
		Example: `  dimflow explore 2 N/m^2
  dimflow explore --theme catppuccin-mocha`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			eng, err := newEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), tui.Config{
				Engine:     eng,
				Theme:      themes.GetTheme(theme),
				Expression: joinArgs(args),
			})
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "default", "color theme (default, catppuccin-mocha)")
	return cmd
}
