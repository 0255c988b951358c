// Package cli wires configuration, adapters and the scan service into the egx command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ahmedfahmy1117/egx/config"
	"github.com/ahmedfahmy1117/egx/internal/adapters/csvstore"
	"github.com/ahmedfahmy1117/egx/internal/adapters/logger"
	"github.com/ahmedfahmy1117/egx/internal/app"
	"github.com/ahmedfahmy1117/egx/internal/strategy"
)

var rootCmd = &cobra.Command{
	Use:   "egx",
	Short: "Daily technical screener for Egyptian Exchange stocks",
	Long: `egx scores every symbol of the EGX universe from its daily price history.

For each symbol it computes:
  - Stochastic %K/%D
  - Daily pivot points
  - Fast/slow EMA trend
  - MACD and its signal line

Price history is read from <data-dir>/<SYMBOL>.csv with open, high, low, close
and volume columns. Settings come from the environment or a .env file.`,
	SilenceUsage: true,
}

var (
	dataDir     string
	symbolsFile string
	logLevel    string
	logFormat   string
)

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data-dir", "", "directory of <SYMBOL>.csv files (overrides DATA_DIR)")
	pf.StringVar(&symbolsFile, "symbols-file", "", "YAML universe file (overrides SYMBOLS_FILE)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	pf.StringVar(&logFormat, "log-format", "", "console or json (overrides LOG_FORMAT)")
}

// env holds the components shared by the subcommands.
type env struct {
	cfg      *config.Config
	logger   *logger.ZerologLogger
	store    *csvstore.Store
	strategy *strategy.Strategy
	scanner  *app.ScanService
}

// setup loads the configuration, applies flag overrides and builds the components.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("symbols-file") {
		cfg.SymbolsFile = symbolsFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logger.ParseLevel(logLevel)
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logger.ParseFormat(logFormat)
	}

	appLogger := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	appLogger.Debug(cmd.Context(), "Configuration loaded", map[string]interface{}{
		"dataDir":     cfg.DataDir,
		"symbolsFile": cfg.SymbolsFile,
		"minHistory":  cfg.MinHistory,
		"level":       cfg.LogLevel.String(),
	})

	strat, err := strategy.New(cfg.Strategy(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize strategy: %w", err)
	}
	store := csvstore.New(cfg.DataDir)
	scanner, err := app.NewScanService(appLogger, store, strat)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scan service: %w", err)
	}

	return &env{
		cfg:      cfg,
		logger:   appLogger,
		store:    store,
		strategy: strat,
		scanner:  scanner,
	}, nil
}

// outputFormat validates the --format flag value.
func outputFormat(format string) error {
	switch format {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table or json)", format)
	}
}

func printf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}
