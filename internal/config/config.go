package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jorge-barreto/tasklist/internal/state"
)

// SearchNames are the config files looked for in the working directory, in order.
var SearchNames = []string{".tasklist.yaml", ".tasklist.yml", ".tasklist.toml"}

type Config struct {
	DataFile  string `yaml:"data-file" toml:"data-file"`
	LogLevel  string `yaml:"log-level" toml:"log-level"`
	UTCOffset int    `yaml:"utc-offset" toml:"utc-offset"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataFile: state.DefaultFile,
		LogLevel: "warn",
	}
}

// Load reads a YAML or TOML config file, chosen by extension, on top of
// the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find returns the first config file from SearchNames present in dir, or
// "" when there is none.
func Find(dir string) (string, error) {
	for _, name := range SearchNames {
		p := filepath.Join(dir, name)
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", p, err)
		}
	}
	return "", nil
}

// Resolve loads the explicit path when given, otherwise the first config
// file found in dir, otherwise the defaults.
func Resolve(explicit, dir string) (*Config, error) {
	path := explicit
	if path == "" {
		found, err := Find(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return Default(), nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}
