package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Load reads the config file at path, applies environment overrides, and
// backfills defaults. A missing file is not an error; defaults plus
// environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			log.WithField("path", path).Info("config file not found, using defaults")
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := unmarshalConfig(path, data, cfg); err != nil {
				return nil, err
			}
			log.WithField("path", path).Info("configuration loaded")
		}
	}

	applyEnvOverrides(cfg)
	cfg.fillDefaults()
	return cfg, nil
}

func unmarshalConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return fmt.Errorf("parse config file (tried YAML and JSON)")
			}
		}
	}
	return nil
}
