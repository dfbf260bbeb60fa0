package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	ShareBaseURL  string
	Compression   bool
	DefaultLocale string
}

// ParseFlags parses CLI flags, falling back to environment variables for
// anything not given on the command line.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("basketry", pflag.ContinueOnError)

	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL or SQLite file path")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.ShareBaseURL, "base-url", "", "Base URL for share links")
	fs.BoolVar(&cfg.Compression, "compression", true, "Compress share payloads with raw DEFLATE")
	fs.StringVar(&cfg.DefaultLocale, "locale", "", "Default catalog locale (en or ru)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

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

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "basketry.db"
	}

	if cfg.ShareBaseURL == "" {
		cfg.ShareBaseURL = os.Getenv("SHARE_BASE_URL")
		if cfg.ShareBaseURL == "" {
			cfg.ShareBaseURL = "https://basketry.app"
		}
	}

	if !fs.Changed("compression") {
		if v := os.Getenv("SHARE_COMPRESSION"); v != "" {
			enabled, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid SHARE_COMPRESSION env variable")
			}
			cfg.Compression = enabled
		}
	}

	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = os.Getenv("DEFAULT_LOCALE")
		if cfg.DefaultLocale == "" {
			cfg.DefaultLocale = "en"
		}
	}

	return cfg, nil
}
