package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/possize/config"
	"github.com/rustyeddy/possize/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "possize",
	Short: "Risk-based position size calculator",
	Long: `possize works out how many units to trade so that hitting the stop
loses a fixed percentage of the account.

It provides:
  - Single trade sizing from account size, risk %, entry and stop
  - Batch sizing of trade setups from CSV, with CSV or Excel output
  - YAML/JSON configuration with .env and environment overrides

Leverage and margin are not modelled.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var (
	cfgFile  string
	envFile  string
	logLevel string

	cfg *config.Config
	log *zap.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file with POSSIZE_* overrides")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// setup loads config in precedence order: defaults, file, env, flags.
// Only commands that size positions use it as their PreRunE, so a broken
// .env or POSSIZE_* value never stops version or config init.
func setup(cmd *cobra.Command, args []string) error {
	var err error

	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	if err := config.LoadEnv(envFile); err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err = logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	log.Debug("config loaded",
		zap.String("file", cfgFile),
		zap.String("currency", cfg.Account.Currency),
		zap.Float64("account_size", cfg.Account.Size),
		zap.Float64("risk_percent", cfg.Defaults.RiskPercent),
		zap.String("locale", cfg.Display.Locale),
	)
	return nil
}
