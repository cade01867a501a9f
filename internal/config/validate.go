package config

import (
	"fmt"
	"time"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the config for errors.
func Validate(cfg *Config) error {
	if cfg.DataFile == "" {
		return fmt.Errorf("config: 'data-file' must not be empty")
	}
	if !validLevels[cfg.LogLevel] {
		return fmt.Errorf("config: unknown log-level %q (must be debug, info, warn, or error)", cfg.LogLevel)
	}
	if cfg.UTCOffset < -12 || cfg.UTCOffset > 14 {
		return fmt.Errorf("config: utc-offset %d out of range (-12 to 14)", cfg.UTCOffset)
	}
	return nil
}

// Zone returns the fixed zone that defines "today".
func (c *Config) Zone() *time.Location {
	if c.UTCOffset == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.UTCOffset), c.UTCOffset*60*60)
}
