package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
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

// JWTConfig holds JWT configuration. Tokens are issued by the upstream
// identity service; this engine only verifies them.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// Multipliers are the pay-rate factors per overtime category. Holiday
// carries two values on purpose: approved overtime on a holiday pays
// the full premium, while holiday hours derived from plain attendance
// pay the simpler double-rate variant. Keeping both here is what stops
// the two code paths from drifting apart.
type Multipliers struct {
	Regular           decimal.Decimal
	Holiday           decimal.Decimal
	AttendanceHoliday decimal.Decimal
	Weekend           decimal.Decimal
}

// PayrollConfig is the pay-policy knob set passed into the calculation
// engines. Engines never read globals; everything tunable arrives
// through this struct.
type PayrollConfig struct {
	StandardHoursPerDay int
	WorkingDaysPerMonth int
	StandardStart       timeutil.ClockTime
	LateGraceMinutes    int

	NightStart    timeutil.ClockTime
	NightEnd      timeutil.ClockTime
	NightDiffRate decimal.Decimal

	Multipliers          Multipliers
	MaternityPayFraction decimal.Decimal

	DailyOvertimeCapHours  int
	WeeklyOvertimeCapHours int

	MonthlyVacationAccrualDays decimal.Decimal
	MonthlySickAccrualDays     decimal.Decimal
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; real env wins.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "payroll-engine"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	payrollCfg, err := loadPayrollConfig()
	if err != nil {
		return nil, err
	}
	config.Payroll = payrollCfg

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollConfig() (PayrollConfig, error) {
	cfg := PayrollConfig{}

	var err error
	if cfg.StandardHoursPerDay, err = getEnvInt("PAYROLL_STANDARD_HOURS_PER_DAY", 8); err != nil {
		return cfg, err
	}
	if cfg.WorkingDaysPerMonth, err = getEnvInt("PAYROLL_WORKING_DAYS_PER_MONTH", 22); err != nil {
		return cfg, err
	}
	if cfg.LateGraceMinutes, err = getEnvInt("PAYROLL_LATE_GRACE_MINUTES", 0); err != nil {
		return cfg, err
	}
	if cfg.DailyOvertimeCapHours, err = getEnvInt("PAYROLL_DAILY_OT_CAP_HOURS", 12); err != nil {
		return cfg, err
	}
	if cfg.WeeklyOvertimeCapHours, err = getEnvInt("PAYROLL_WEEKLY_OT_CAP_HOURS", 60); err != nil {
		return cfg, err
	}

	if cfg.StandardStart, err = getEnvClock("PAYROLL_STANDARD_START", "09:00"); err != nil {
		return cfg, err
	}
	if cfg.NightStart, err = getEnvClock("PAYROLL_NIGHT_START", "22:00"); err != nil {
		return cfg, err
	}
	if cfg.NightEnd, err = getEnvClock("PAYROLL_NIGHT_END", "06:00"); err != nil {
		return cfg, err
	}

	if cfg.NightDiffRate, err = getEnvDecimal("PAYROLL_NIGHT_DIFF_RATE", "0.10"); err != nil {
		return cfg, err
	}
	if cfg.MaternityPayFraction, err = getEnvDecimal("PAYROLL_MATERNITY_PAY_FRACTION", "0.60"); err != nil {
		return cfg, err
	}
	if cfg.MonthlyVacationAccrualDays, err = getEnvDecimal("PAYROLL_MONTHLY_VACATION_ACCRUAL", "1.25"); err != nil {
		return cfg, err
	}
	if cfg.MonthlySickAccrualDays, err = getEnvDecimal("PAYROLL_MONTHLY_SICK_ACCRUAL", "1.25"); err != nil {
		return cfg, err
	}

	if cfg.Multipliers.Regular, err = getEnvDecimal("PAYROLL_OT_MULTIPLIER_REGULAR", "1.25"); err != nil {
		return cfg, err
	}
	if cfg.Multipliers.Holiday, err = getEnvDecimal("PAYROLL_OT_MULTIPLIER_HOLIDAY", "2.60"); err != nil {
		return cfg, err
	}
	if cfg.Multipliers.AttendanceHoliday, err = getEnvDecimal("PAYROLL_MULTIPLIER_ATTENDANCE_HOLIDAY", "2.00"); err != nil {
		return cfg, err
	}
	if cfg.Multipliers.Weekend, err = getEnvDecimal("PAYROLL_OT_MULTIPLIER_WEEKEND", "1.30"); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.StandardHoursPerDay <= 0 || c.Payroll.StandardHoursPerDay > 24 {
		return fmt.Errorf("PAYROLL_STANDARD_HOURS_PER_DAY must be between 1 and 24")
	}
	if c.Payroll.WorkingDaysPerMonth <= 0 || c.Payroll.WorkingDaysPerMonth > 31 {
		return fmt.Errorf("PAYROLL_WORKING_DAYS_PER_MONTH must be between 1 and 31")
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

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvClock(key, fallback string) (timeutil.ClockTime, error) {
	c, err := timeutil.ParseClock(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return c, nil
}
