package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dimflow/internal/config"
	"github.com/Veraticus/dimflow/internal/model"
)

// useConfig installs cfg as the loaded configuration for one test.
func useConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	prev := appConfig
	appConfig = cfg
	t.Cleanup(func() { appConfig = prev })
}

func testConfig(output string) *config.Config {
	cfg := currentConfigDefaults()
	cfg.Output = output
	return cfg
}

func catalogConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := testConfig(config.OutputTable)
	cfg.CatalogEnabled = true
	cfg.CatalogPath = filepath.Join(t.TempDir(), "units.db")
	return cfg
}

func currentConfigDefaults() *config.Config {
	prev := appConfig
	appConfig = nil
	defer func() { appConfig = prev }()
	return currentConfig()
}

func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"convert", "derived", "recompose", "dimensions", "units", "catalog", "explore", "repl", "version"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "log-level", "log-format", "catalog", "no-catalog", "output", "precision"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
	assert.Equal(t, "o", cmd.PersistentFlags().Lookup("output").Shorthand)
}

func TestCurrentConfigDefaults(t *testing.T) {
	cfg := currentConfigDefaults()
	assert.False(t, cfg.CatalogEnabled)
	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.True(t, cfg.Simplify)
	assert.True(t, cfg.Derived)
}

func TestParseUnitFlags(t *testing.T) {
	tests := []struct {
		want    model.Selection
		name    string
		values  []string
		wantErr bool
	}{
		{
			name:   "none",
			values: nil,
			want:   model.Selection{},
		},
		{
			name:   "case insensitive dimension",
			values: []string{"force=lbf", "LENGTH = ft"},
			want: model.NewSelection(
				model.SelectedUnit{Dimension: model.DimensionForce, Unit: "lbf"},
				model.SelectedUnit{Dimension: model.DimensionLength, Unit: "ft"},
			),
		},
		{
			name:   "later choice wins",
			values: []string{"TIME=s", "TIME=min"},
			want:   model.NewSelection(model.SelectedUnit{Dimension: model.DimensionTime, Unit: "min"}),
		},
		{name: "missing separator", values: []string{"TIME"}, wantErr: true},
		{name: "missing unit", values: []string{"TIME="}, wantErr: true},
		{name: "missing dimension", values: []string{"=s"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUnitFlags(tt.values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, versionCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, "dimflow dev\n", out)
}
