package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the pay-rule knobs used by the payroll engine.
// Defaults mirror the rates the policy was written against.
type PayrollConfig struct {
	OvertimeRate       decimal.Decimal
	HolidayRate        decimal.Decimal
	StandardDailyHours decimal.Decimal
	MonthlyHours       decimal.Decimal
	FallbackHourlyRate decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffdesk_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	payroll, err := loadPayrollConfig()
	if err != nil {
		return nil, err
	}
	config.Payroll = payroll

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollConfig() (PayrollConfig, error) {
	cfg := PayrollConfig{}

	fields := []struct {
		env      string
		fallback string
		dst      *decimal.Decimal
	}{
		{"PAYROLL_OVERTIME_RATE", "1.33", &cfg.OvertimeRate},
		{"PAYROLL_HOLIDAY_RATE", "2.0", &cfg.HolidayRate},
		{"PAYROLL_STANDARD_DAILY_HOURS", "8", &cfg.StandardDailyHours},
		{"PAYROLL_MONTHLY_HOURS", "168", &cfg.MonthlyHours},
		{"PAYROLL_FALLBACK_HOURLY_RATE", "200", &cfg.FallbackHourlyRate},
	}
	for _, f := range fields {
		v, err := decimal.NewFromString(getEnv(f.env, f.fallback))
		if err != nil {
			return PayrollConfig{}, fmt.Errorf("invalid %s: %w", f.env, err)
		}
		*f.dst = v
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Payroll.StandardDailyHours.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("PAYROLL_STANDARD_DAILY_HOURS must be positive")
	}
	if c.Payroll.MonthlyHours.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("PAYROLL_MONTHLY_HOURS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
