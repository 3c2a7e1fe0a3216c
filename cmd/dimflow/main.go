package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/config"
)

var (
	cfgFile   string
	version   = "dev"
	appConfig *config.Config
	rootCmd   = newRootCmd()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dimflow",
		Short: "📐 Unit algebra and dimensional analysis",
		Long: `dimflow evaluates physical quantities such as "2 N/m^2", lists every
compatible and derived unit, and recomposes the value into any combination
of base units you choose.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/dimflow/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("catalog", config.DefaultCatalogPath, "path to the SQLite unit catalog")
	flags.Bool("no-catalog", false, "use the built-in unit table without a catalog")
	flags.StringP("output", "o", config.OutputTable, "output format (table, json, yaml)")
	flags.Int("precision", 14, "significant digits in formatted numbers")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyCatalogPath, flags.Lookup("catalog"))
	_ = viper.BindPFlag(config.KeyOutput, flags.Lookup("output"))
	_ = viper.BindPFlag(config.KeyPrecision, flags.Lookup("precision"))

	// Add commands
	cmd.AddCommand(convertCmd())
	cmd.AddCommand(derivedCmd())
	cmd.AddCommand(recomposeCmd())
	cmd.AddCommand(dimensionsCmd())
	cmd.AddCommand(unitsCmd())
	cmd.AddCommand(catalogCmd())
	cmd.AddCommand(exploreCmd())
	cmd.AddCommand(replCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func main() {
	// Set up signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(os.Stderr, userErr.UserMessage)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()

	// Set up config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		v.AddConfigPath(fmt.Sprintf("%s/.config/dimflow", home))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Environment variables, e.g. DIMFLOW_LOGGING_LEVEL
	v.SetEnvPrefix("DIMFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if noCatalog, _ := cmd.Flags().GetBool("no-catalog"); noCatalog {
		v.Set(config.KeyCatalogEnabled, false)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	if err := common.SetupLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	appConfig = cfg
	slog.Debug("configuration loaded",
		"config_file", v.ConfigFileUsed(),
		"catalog", cfg.CatalogPath,
		"catalog_enabled", cfg.CatalogEnabled)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dimflow %s\n", version)
		},
	}
}
