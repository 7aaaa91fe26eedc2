package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/delamain/pkg/errx"
	"github.com/Abraxas-365/delamain/pkg/logx"
)

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logx.WithField("key", key).WithError(err).Warnf("config: ignoring unparsable %s, using %d", key, fallback)
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		logx.WithField("key", key).WithError(err).Warnf("config: ignoring unparsable %s, using %s", key, fallback)
		return fallback
	}
	return v
}

func invalid(key, value string) *errx.Error {
	return errx.Validation("invalid configuration value").
		WithDetail("key", key).
		WithDetail("value", value)
}
