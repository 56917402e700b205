package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr        string
	DatabaseURL string
	Environment string

	// AdminTokenDigest is a bcrypt digest of the shared admin secret. When
	// empty, AdminToken (plaintext) is digested at startup; one of the two
	// must be set for administrative writes to be possible.
	AdminToken       string
	AdminTokenDigest string

	RunMigrations  bool
	RunSeed        bool
	MigrationsDir  string
	CertificateDir string
	MetricsEnabled bool

	// AllowConcurrentAssignments permits an employee to hold active
	// assignments on more than one job at a time (joint appointments).
	AllowConcurrentAssignments bool

	// AppealResolution selects what an accepted appeal does to the
	// appraisal score: "correct" writes the corrected score during
	// resolution, "manual" leaves scores untouched.
	AppealResolution string
}

func Load() Config {
	return Config{
		Addr:                       getEnv("APP_ADDR", ":8080"),
		DatabaseURL:                getEnv("DATABASE_URL", ""),
		Environment:                getEnv("APP_ENV", "development"),
		AdminToken:                 getEnv("ADMIN_TOKEN", ""),
		AdminTokenDigest:           getEnv("ADMIN_TOKEN_DIGEST", ""),
		RunMigrations:              getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:                    getEnvBool("RUN_SEED", true),
		MigrationsDir:              getEnv("MIGRATIONS_DIR", "migrations"),
		CertificateDir:             getEnv("CERTIFICATE_DIR", "certificates"),
		MetricsEnabled:             getEnvBool("METRICS_ENABLED", true),
		AllowConcurrentAssignments: getEnvBool("ALLOW_CONCURRENT_ASSIGNMENTS", true),
		AppealResolution:           getEnv("APPEAL_RESOLUTION", "correct"),
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

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.AdminToken) == "" && strings.TrimSpace(c.AdminTokenDigest) == "" {
			return fmt.Errorf("ADMIN_TOKEN or ADMIN_TOKEN_DIGEST must be set in production")
		}
	}
	switch c.AppealResolution {
	case "correct", "manual":
	default:
		return fmt.Errorf("APPEAL_RESOLUTION must be \"correct\" or \"manual\", got %q", c.AppealResolution)
	}
	return nil
}
