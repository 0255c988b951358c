package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ahmedfahmy1117/egx/internal/adapters/logger"
	"github.com/ahmedfahmy1117/egx/internal/strategy"
	"github.com/ahmedfahmy1117/egx/internal/strategy/indicators"
)

// Config holds all application configuration.
type Config struct {
	// Data
	DataDir     string // Directory holding one <SYMBOL>.csv per symbol
	SymbolsFile string // Optional YAML universe; empty means the built-in EGX list
	MinHistory  int    // Bars required before a symbol is scored

	// Strategy Parameters
	StrategyEMAFastSpan int     // e.g., 20
	StrategyEMASlowSpan int     // e.g., 50
	StrategyMACDFast    int     // e.g., 12
	StrategyMACDSlow    int     // e.g., 26
	StrategyMACDSignal  int     // e.g., 9
	StrategyStochK      int     // e.g., 14
	StrategyStochD      int     // e.g., 3
	StrategyOversold    float64 // e.g., 20.0

	// Score weights
	ScoreEMATrend   int
	ScoreMACDCross  int
	ScoreStochCross int
	ScoreOversold   int

	// Report
	TopN          int // 0 lists every scoring symbol
	PriceDecimals int

	// Logging
	LogLevel  logger.LogLevel
	LogFormat logger.Format
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Data
	cfg.DataDir = getEnv("DATA_DIR", "data")
	cfg.SymbolsFile = getEnv("SYMBOLS_FILE", "")

	cfg.MinHistory, err = getEnvAsIntRequired("MIN_HISTORY", 50)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid MIN_HISTORY: %v", err))
	} else if cfg.MinHistory <= 0 {
		errs = append(errs, "MIN_HISTORY must be positive")
	}

	// Strategy Parameters
	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"EMA_FAST_SPAN", 20, &cfg.StrategyEMAFastSpan},
		{"EMA_SLOW_SPAN", 50, &cfg.StrategyEMASlowSpan},
		{"MACD_FAST", 12, &cfg.StrategyMACDFast},
		{"MACD_SLOW", 26, &cfg.StrategyMACDSlow},
		{"MACD_SIGNAL", 9, &cfg.StrategyMACDSignal},
		{"STOCH_K_PERIOD", 14, &cfg.StrategyStochK},
		{"STOCH_D_PERIOD", 3, &cfg.StrategyStochD},
	}
	for _, p := range ints {
		*p.dst, err = getEnvAsIntRequired(p.key, p.def)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", p.key, err))
		} else if *p.dst <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be positive", p.key))
		}
	}
	if cfg.StrategyEMAFastSpan >= cfg.StrategyEMASlowSpan {
		errs = append(errs, "EMA_FAST_SPAN must be less than EMA_SLOW_SPAN")
	}

	cfg.StrategyOversold, err = getEnvAsFloatRequired("STOCH_OVERSOLD", 20.0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid STOCH_OVERSOLD: %v", err))
	} else if cfg.StrategyOversold <= 0 || cfg.StrategyOversold >= 100 {
		errs = append(errs, "STOCH_OVERSOLD must be between 0 and 100 (exclusive)")
	}

	// Score weights (using defaults if not set)
	cfg.ScoreEMATrend = getEnvAsInt("SCORE_EMA_TREND", 2)
	cfg.ScoreMACDCross = getEnvAsInt("SCORE_MACD_CROSS", 2)
	cfg.ScoreStochCross = getEnvAsInt("SCORE_STOCH_CROSS", 2)
	cfg.ScoreOversold = getEnvAsInt("SCORE_OVERSOLD", 1)
	if cfg.ScoreEMATrend < 0 || cfg.ScoreMACDCross < 0 || cfg.ScoreStochCross < 0 || cfg.ScoreOversold < 0 {
		errs = append(errs, "score weights cannot be negative")
	}

	// Report
	cfg.TopN, err = getEnvAsIntRequired("TOP_N", 0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid TOP_N: %v", err))
	} else if cfg.TopN < 0 {
		errs = append(errs, "TOP_N cannot be negative")
	}

	cfg.PriceDecimals, err = getEnvAsIntRequired("PRICE_DECIMALS", 3)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid PRICE_DECIMALS: %v", err))
	} else if cfg.PriceDecimals < 0 {
		errs = append(errs, "PRICE_DECIMALS cannot be negative")
	}

	// Logging
	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))
	cfg.LogFormat = logger.ParseFormat(getEnv("LOG_FORMAT", string(logger.FormatConsole)))

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// Strategy builds the screening strategy parameters from the configuration.
func (c *Config) Strategy() strategy.Config {
	return strategy.Config{
		EMAFastSpan: c.StrategyEMAFastSpan,
		EMASlowSpan: c.StrategyEMASlowSpan,
		MACD: indicators.MACDConfig{
			Fast:   c.StrategyMACDFast,
			Slow:   c.StrategyMACDSlow,
			Signal: c.StrategyMACDSignal,
		},
		Stochastic: indicators.StochasticConfig{
			KPeriod: c.StrategyStochK,
			DPeriod: c.StrategyStochD,
		},
		Oversold:   c.StrategyOversold,
		MinHistory: c.MinHistory,
		Weights: strategy.Weights{
			EMATrend:   c.ScoreEMATrend,
			MACDCross:  c.ScoreMACDCross,
			StochCross: c.ScoreStochCross,
			Oversold:   c.ScoreOversold,
		},
	}
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Log warning? For non-required fields, default is often acceptable.
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
