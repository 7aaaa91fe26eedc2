package config

import (
	"time"

	"github.com/Abraxas-365/delamain/pkg/asyncx"
)

// AsyncxConfig configures default timeouts and retry budgets.
type AsyncxConfig struct {
	DefaultTimeout    time.Duration
	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
}

// RetryPolicy builds the retry policy described by the configuration.
func (c AsyncxConfig) RetryPolicy() asyncx.Policy {
	return asyncx.Policy{
		MaxAttempts:  c.RetryMaxAttempts,
		InitialDelay: c.RetryInitialDelay,
	}
}

func loadAsyncxConfig() (AsyncxConfig, error) {
	cfg := AsyncxConfig{
		DefaultTimeout:    getEnvDuration("ASYNCX_DEFAULT_TIMEOUT", 30*time.Second),
		RetryMaxAttempts:  getEnvInt("ASYNCX_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: getEnvDuration("ASYNCX_RETRY_INITIAL_DELAY", time.Second),
	}

	if cfg.DefaultTimeout <= 0 {
		return AsyncxConfig{}, invalid("ASYNCX_DEFAULT_TIMEOUT", cfg.DefaultTimeout.String())
	}
	if err := cfg.RetryPolicy().Validate(); err != nil {
		return AsyncxConfig{}, err
	}
	return cfg, nil
}
