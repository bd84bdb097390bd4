package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr                   string
	DatabaseURL            string
	Environment            string
	AnchorCurrency         string
	LocalCurrency          string
	AnnualLeaveEntitlement int
	DefaultWorkingDays     int
	LeaveOverlapPolicy     string
	CORSAllowedOrigins     []string
	RunMigrations          bool
	RunSeed                bool
	MaxBodyBytes           int64
	MetricsEnabled         bool
}

func Load() Config {
	return Config{
		Addr:                   getEnv("APP_ADDR", ":8080"),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		Environment:            getEnv("APP_ENV", "development"),
		AnchorCurrency:         getEnv("ANCHOR_CURRENCY", "USD"),
		LocalCurrency:          getEnv("LOCAL_CURRENCY", "ZWL"),
		AnnualLeaveEntitlement: getEnvInt("ANNUAL_LEAVE_ENTITLEMENT", 21),
		DefaultWorkingDays:     getEnvInt("DEFAULT_WORKING_DAYS", 26),
		LeaveOverlapPolicy:     getEnv("LEAVE_OVERLAP_POLICY", "full_span"),
		CORSAllowedOrigins:     getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RunMigrations:          getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:                getEnvBool("RUN_SEED", false),
		MaxBodyBytes:           int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		MetricsEnabled:         getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.AnnualLeaveEntitlement <= 0 {
		return fmt.Errorf("ANNUAL_LEAVE_ENTITLEMENT must be positive")
	}
	if c.DefaultWorkingDays <= 0 || c.DefaultWorkingDays > 31 {
		return fmt.Errorf("DEFAULT_WORKING_DAYS must be between 1 and 31")
	}
	if c.LeaveOverlapPolicy != "full_span" && c.LeaveOverlapPolicy != "clipped" {
		return fmt.Errorf("LEAVE_OVERLAP_POLICY must be full_span or clipped")
	}
	if strings.TrimSpace(c.AnchorCurrency) == "" || strings.TrimSpace(c.LocalCurrency) == "" {
		return fmt.Errorf("ANCHOR_CURRENCY and LOCAL_CURRENCY are required")
	}
	if strings.EqualFold(c.AnchorCurrency, c.LocalCurrency) {
		return fmt.Errorf("ANCHOR_CURRENCY and LOCAL_CURRENCY must differ")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	return nil
}
