package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/dimflow/internal/cli"
	"github.com/Veraticus/dimflow/internal/storage"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the SQLite unit catalog",
	}

	cmd.AddCommand(catalogInitCmd())
	cmd.AddCommand(catalogInfoCmd())
	return cmd
}

func catalogInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the catalog and seed it with the built-in units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := currentConfig()

			catalog, err := openCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeCatalog(catalog)

			count, err := catalog.Count(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Catalog ready at %s with %d units", catalog.Path(), count)))
			return nil
		},
	}
}

func catalogInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show catalog location, schema version and unit count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := currentConfig()
			ctx := cmd.Context()

			catalog, err := openCatalog(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeCatalog(catalog)

			version, err := catalog.SchemaVersion(ctx)
			if err != nil {
				return err
			}
			units, err := catalog.Units(ctx)
			if err != nil {
				return err
			}

			custom := 0
			for _, u := range units {
				if u.Source == storage.SourceUser {
					custom++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Unit catalog"))
			fmt.Fprintf(out, "  Path:    %s\n", catalog.Path())
			fmt.Fprintf(out, "  Schema:  v%d (expected v%d)\n", version, storage.ExpectedSchemaVersion)
			fmt.Fprintf(out, "  Units:   %d (%d custom)\n", len(units), custom)
			return nil
		},
	}
}
