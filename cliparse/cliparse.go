package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Session store types
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMySQL    = "mysql"
)

type Config struct {
	Port             int
	StoreType        string
	DatabaseURL      string
	SessionSecret    string
	ReportResetDelay time.Duration
	SessionTTL       time.Duration
	SeedFile         string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ecosync", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "t", "", "Session store type (memory, sqlite, postgres or mysql)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for SQL session stores")

	// Behaviour
	fs.DurationVar(&cfg.ReportResetDelay, "reset-delay", 0, "How long the report confirmation stays up")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Idle time before a session is pruned")
	fs.StringVar(&cfg.SeedFile, "seed", "", "Mock data YAML file (default: embedded)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreMemory
		}
	}
	switch cfg.StoreType {
	case StoreMemory, StoreSQLite, StorePostgres, StoreMySQL:
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.StoreType != StoreMemory && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for SQL stores (use -d or DATABASE_URL env)")
	}

	var err error
	if cfg.ReportResetDelay, err = durationOrEnv(cfg.ReportResetDelay, "REPORT_RESET_DELAY", 3*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationOrEnv(cfg.SessionTTL, "SESSION_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}

	if cfg.SeedFile == "" {
		cfg.SeedFile = os.Getenv("SEED_FILE")
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	return cfg, nil
}

func durationOrEnv(v time.Duration, env string, def time.Duration) (time.Duration, error) {
	if v != 0 {
		if v < 0 {
			return 0, fmt.Errorf("%s must be positive", env)
		}
		return v, nil
	}
	s := os.Getenv(env)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s env variable", env)
	}
	return d, nil
}
