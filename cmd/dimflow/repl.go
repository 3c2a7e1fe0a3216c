package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/dimflow/internal/cli"
	"github.com/Veraticus/dimflow/internal/model"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions line by line",
		Long: `Read expressions from standard input and print their conversions.

Commands:
  :unit DIM=unit ...   choose units for recomposition
  :clear               forget all chosen units
  quit, exit           leave

Chosen units are kept across expressions for the dimensions each new
expression still uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := currentConfig()

			eng, err := newEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			r, err := newRenderer(cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx := handler.HandleInterrupts(cmd.Context())

			out := cmd.OutOrStdout()
			reader := cli.NewLineReader(cmd.InOrStdin())
			sel := model.Selection{}
			expr := ""

			for {
				if !r.Structured() {
					fmt.Fprint(out, cli.FormatPrompt("dimflow"))
				}

				line, err := reader.ReadLine(ctx)
				switch {
				case errors.Is(err, io.EOF), errors.Is(err, cli.ErrInputCancelled):
					return nil
				case err != nil:
					return fmt.Errorf("failed to read input: %w", err)
				}

				switch {
				case line == "":
					continue
				case line == "quit" || line == "exit":
					return nil
				case line == ":clear":
					sel = model.Selection{}
				case strings.HasPrefix(line, ":unit "):
					chosen, err := parseUnitFlags(strings.Fields(strings.TrimPrefix(line, ":unit ")))
					if err != nil {
						fmt.Fprintln(out, cli.FormatError(err.Error()))
						continue
					}
					for _, u := range chosen.Entries() {
						sel.Set(u)
					}
				default:
					expr = line
				}

				if expr == "" {
					continue
				}

				rec := eng.RecomputeAll(expr, sel)
				if rec.Err == nil {
					sel = rec.Selection
				}
				if err := r.Recomputation(expr, rec); err != nil {
					return err
				}
			}
		},
	}
}
