package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Source kinds accepted by SALES_SOURCE.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SalesFile   string
	SalesSource string
	XLSXSheet   string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	SalesTable       string

	// Period and TargetOrder override the reference file when set.
	Period      string
	TargetOrder int64

	ReferenceFile string
	LogLevel      string
	StrictExit    bool
	NoColor       bool

	// DotEnvLoaded is false when no .env file was read.
	DotEnvLoaded bool
}

// Load reads the .env file and returns a populated Config struct.
// A missing .env is not an error; DotEnvLoaded reports it so the caller can log it.
func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		DotEnvLoaded: loaded,

		SalesFile:   getEnv("SALES_FILE", "./data/all_time_review_file.csv"),
		SalesSource: strings.ToLower(getEnv("SALES_SOURCE", SourceFile)),
		XLSXSheet:   getEnv("XLSX_SHEET", ""),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "revenue"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresDB:       getEnv("POSTGRES_DB", "sales"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		SalesTable:       getEnv("SALES_TABLE", "sales_export"),

		Period:      getEnv("PERIOD", ""),
		TargetOrder: getEnvInt64("TARGET_ORDER", 0),

		ReferenceFile: getEnv("REFERENCE_FILE", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StrictExit:    getEnvBool("STRICT_EXIT", false),
		NoColor:       os.Getenv("NO_COLOR") != "",
	}
}

// Validate returns every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.SalesSource {
	case SourceFile:
		if c.SalesFile == "" {
			problems = append(problems, "SALES_FILE cannot be empty when SALES_SOURCE is file")
		}
	case SourcePostgres:
		if c.PostgresHost == "" {
			problems = append(problems, "POSTGRES_HOST cannot be empty when SALES_SOURCE is postgres")
		}
		if c.PostgresDB == "" {
			problems = append(problems, "POSTGRES_DB cannot be empty when SALES_SOURCE is postgres")
		}
		if c.SalesTable == "" {
			problems = append(problems, "SALES_TABLE cannot be empty when SALES_SOURCE is postgres")
		}
		if port, err := strconv.Atoi(c.PostgresPort); err != nil {
			problems = append(problems, fmt.Sprintf("invalid POSTGRES_PORT '%s': must be a number", c.PostgresPort))
		} else if port < 1 || port > 65535 {
			problems = append(problems, fmt.Sprintf("invalid POSTGRES_PORT %d: must be between 1 and 65535", port))
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid SALES_SOURCE '%s': must be one of [%s %s]", c.SalesSource, SourceFile, SourcePostgres))
	}

	if c.TargetOrder < 0 {
		problems = append(problems, fmt.Sprintf("invalid TARGET_ORDER %d: must not be negative", c.TargetOrder))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
