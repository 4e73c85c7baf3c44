package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	PayslipSourceRecompute = "recompute"
	PayslipSourcePayroll   = "payroll"
)

type Config struct {
	Environment string
	Port        string

	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Payroll   PayrollConfig
	RateRPS   float64
	RateBurst int

	AutoMigrate        bool
	SeedDeductionRules bool
	OutboxPollInterval time.Duration
}

type DBConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
	// TimeZone is the session time zone; calendar dates of pay periods and
	// ledgers are read in it.
	TimeZone string
}

func (c DBConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
	if c.TimeZone != "" {
		dsn += " TimeZone=" + c.TimeZone
	}
	return dsn
}

type RedisConfig struct {
	Addr            string
	SummaryCacheTTL time.Duration
}

type KafkaConfig struct {
	Broker  string
	GroupID string
}

// PayrollConfig carries every business constant the engine needs. It is
// passed by value into the services that use it.
type PayrollConfig struct {
	OvertimeMultiplier      decimal.Decimal
	OvertimeRankAndFileOnly bool
	PagIbigCeiling          decimal.Decimal
	PayslipWorkingDays      int
	PayslipSource           string
	GenerationWorkers       int
}

func DefaultPayrollConfig() PayrollConfig {
	return PayrollConfig{
		OvertimeMultiplier: decimal.RequireFromString("1.5"),
		PagIbigCeiling:     decimal.RequireFromString("100.00"),
		PayslipWorkingDays: 22,
		PayslipSource:      PayslipSourceRecompute,
		GenerationWorkers:  4,
	}
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	timezone := getEnv("APP_TIMEZONE", "Asia/Manila")
	if _, err := time.LoadLocation(timezone); err != nil {
		return Config{}, fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	multiplier, err := getEnvDecimal("OVERTIME_MULTIPLIER", "1.5")
	if err != nil {
		return Config{}, err
	}
	ceiling, err := getEnvDecimal("PAGIBIG_CEILING", "100.00")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3000"),
		DB: DBConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "payroll"),
			Port:       getEnv("DB_PORT", "5432"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: getEnvInt("DB_MAX_RETRIES", 5),
			TimeZone:   timezone,
		},
		Redis: RedisConfig{
			Addr:            getEnv("REDIS_ADDR", ""),
			SummaryCacheTTL: getEnvDuration("SUMMARY_CACHE_TTL", 10*time.Minute),
		},
		Kafka: KafkaConfig{
			Broker:  getEnv("KAFKA_BROKER", ""),
			GroupID: getEnv("KAFKA_GROUP_ID", "go-payroll-payslip"),
		},
		Payroll: PayrollConfig{
			OvertimeMultiplier:      multiplier,
			OvertimeRankAndFileOnly: getEnvBool("OVERTIME_RANK_AND_FILE_ONLY", false),
			PagIbigCeiling:          ceiling,
			PayslipWorkingDays:      getEnvInt("PAYSLIP_WORKING_DAYS", 22),
			PayslipSource:           strings.ToLower(getEnv("PAYSLIP_SOURCE", PayslipSourceRecompute)),
			GenerationWorkers:       getEnvInt("GENERATION_WORKERS", 4),
		},
		RateRPS:            getEnvFloat("RATE_LIMIT_RPS", 10),
		RateBurst:          getEnvInt("RATE_LIMIT_BURST", 20),
		AutoMigrate:        getEnvBool("AUTO_MIGRATE", true),
		SeedDeductionRules: getEnvBool("SEED_DEDUCTION_RULES", true),
		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DB.Host) == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DB.MaxRetries < 1 {
		return fmt.Errorf("DB_MAX_RETRIES must be at least 1")
	}
	return c.Payroll.Validate()
}

func (c PayrollConfig) Validate() error {
	if !c.OvertimeMultiplier.IsPositive() {
		return fmt.Errorf("OVERTIME_MULTIPLIER must be positive")
	}
	if c.PagIbigCeiling.IsNegative() {
		return fmt.Errorf("PAGIBIG_CEILING cannot be negative")
	}
	if c.PayslipWorkingDays <= 0 {
		return fmt.Errorf("PAYSLIP_WORKING_DAYS must be positive")
	}
	if c.GenerationWorkers <= 0 {
		return fmt.Errorf("GENERATION_WORKERS must be positive")
	}
	switch c.PayslipSource {
	case PayslipSourceRecompute, PayslipSourcePayroll:
	default:
		return fmt.Errorf("PAYSLIP_SOURCE must be %q or %q", PayslipSourceRecompute, PayslipSourcePayroll)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	parsed, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	parsed, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	parsed, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	parsed, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
