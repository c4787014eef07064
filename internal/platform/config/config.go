package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration resolved from the environment.
// The engine and registry client receive these values as explicit structs at
// construction; nothing reads the environment after startup.
type Server struct {
	Addr string

	// Verification thresholds.
	CreditMinScore         int
	CreditMaxScore         int
	FreshnessWarnMinutes   int
	FreshnessRejectMinutes int

	// Carrier registry integration. An empty APIKey puts the registry check
	// into degraded (skipped) mode rather than failing verifications.
	RegistryBaseURL string
	RegistryAPIKey  string
	RegistryTimeout time.Duration

	// APISigningKey enables the bearer-token gate on verify endpoints when set.
	APISigningKey string
}

// Defaults for the verification thresholds and the registry call budget.
const (
	DefaultCreditMinScore         = 82
	DefaultCreditMaxScore         = 97
	DefaultFreshnessWarnMinutes   = 30
	DefaultFreshnessRejectMinutes = 60
	DefaultRegistryTimeout        = 5 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("LOADGUARD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	registryBase := os.Getenv("REGISTRY_API_URL")
	if registryBase == "" {
		registryBase = "https://mobile.fmcsa.dot.gov/qc/services/carriers"
	}

	return Server{
		Addr:                   addr,
		CreditMinScore:         intFromEnv("CREDIT_MIN_SCORE", DefaultCreditMinScore),
		CreditMaxScore:         intFromEnv("CREDIT_MAX_SCORE", DefaultCreditMaxScore),
		FreshnessWarnMinutes:   intFromEnv("FRESHNESS_WARN_MINUTES", DefaultFreshnessWarnMinutes),
		FreshnessRejectMinutes: intFromEnv("FRESHNESS_REJECT_MINUTES", DefaultFreshnessRejectMinutes),
		RegistryBaseURL:        registryBase,
		RegistryAPIKey:         os.Getenv("REGISTRY_API_KEY"),
		RegistryTimeout:        durationFromEnv("REGISTRY_TIMEOUT", DefaultRegistryTimeout),
		APISigningKey:          os.Getenv("API_SIGNING_KEY"),
	}
}

func intFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
