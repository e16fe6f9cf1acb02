package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service configuration, sourced from the environment.
type Config struct {
	// HTTP server
	Port string

	// External engine
	LedgerFile     string
	LedgerBinary   string
	CommandTimeout time.Duration

	// Serving variant selection
	QueryMode         string // "register" or "balance"
	SearchSuffixKinds bool
	StrictAmounts     bool
}

const (
	ModeRegister = "register"
	ModeBalance  = "balance"
)

// Load reads configuration from environment variables, applying
// defaults that reproduce the register-serving variant.
func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		LedgerFile:     getEnv("LEDGER_FILE", ""),
		LedgerBinary:   getEnv("LEDGER_BINARY", "ledger"),
		CommandTimeout: getEnvDuration("COMMAND_TIMEOUT", 30*time.Second),
		QueryMode:      getEnv("QUERY_MODE", ModeRegister),
		StrictAmounts:  getEnvBool("STRICT_AMOUNTS", false),
	}

	// Search suffixing historically tracked the serving variant: the
	// register server suffixed query kinds, the balance server did not.
	cfg.SearchSuffixKinds = getEnvBool("SEARCH_SUFFIX_KINDS", cfg.QueryMode == ModeRegister)

	return cfg
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.LedgerFile == "" {
		errs = append(errs, "LEDGER_FILE must be set to the journal file path")
	} else if _, err := os.Stat(c.LedgerFile); err != nil {
		errs = append(errs, fmt.Sprintf("ledger file '%s' is not readable: %v", c.LedgerFile, err))
	}

	if c.LedgerBinary == "" {
		errs = append(errs, "ledger binary name cannot be empty")
	}

	if c.QueryMode != ModeRegister && c.QueryMode != ModeBalance {
		errs = append(errs, fmt.Sprintf("invalid query mode '%s': must be '%s' or '%s'", c.QueryMode, ModeRegister, ModeBalance))
	}

	if c.CommandTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid command timeout %v: must be at least 1 second", c.CommandTimeout))
	} else if c.CommandTimeout > 10*time.Minute {
		errs = append(errs, fmt.Sprintf("invalid command timeout %v: must be at most 10 minutes", c.CommandTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
