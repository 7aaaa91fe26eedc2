package config

import (
	"github.com/Abraxas-365/delamain/pkg/logx"
)

// Config aggregates every environment-driven setting of the library.
type Config struct {
	Asyncx AsyncxConfig
	Log    *logx.Config
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	asyncx, err := loadAsyncxConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Asyncx: asyncx,
		Log:    logx.LoadFromEnv(),
	}, nil
}
