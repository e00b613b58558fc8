package config

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string
	LogLevel    string

	Exchange struct {
		APIKey  string
		Secret  string
		Testnet bool
	}

	Analysis struct {
		Symbol   string
		Interval string
		Category string
		Days     int
	}

	Monitoring struct {
		MetricsPort int
		HealthPort  int
	}
}

func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
	}

	cfg.Exchange.APIKey = getEnv("BYBIT_API_KEY", "")
	cfg.Exchange.Secret = getEnv("BYBIT_API_SECRET", "")
	cfg.Exchange.Testnet = getEnvBool("BYBIT_TESTNET", false)

	cfg.Analysis.Symbol = getEnv("ANALYSIS_SYMBOL", "BTCUSDT")
	cfg.Analysis.Interval = getEnv("ANALYSIS_INTERVAL", "1d")
	cfg.Analysis.Category = getEnv("ANALYSIS_CATEGORY", "spot")
	cfg.Analysis.Days = getEnvInt("ANALYSIS_DAYS", 365)

	cfg.Monitoring.MetricsPort = getEnvInt("METRICS_PORT", 0)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 0)

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
