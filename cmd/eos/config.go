package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const envConfigVar = "EOS_CONFIG"

// Config holds the defaults read from a YAML config file.
//
//	zone: Europe/Paris
//	format: yaml
//	disambiguation: earlier
type Config struct {
	Zone           string `yaml:"zone"`
	Format         string `yaml:"format"`
	Disambiguation string `yaml:"disambiguation"`
}

// loadConfig reads the config file at path, or at $EOS_CONFIG when path is
// empty. No file at all yields the zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		path = os.Getenv(envConfigVar)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q: want text, json or yaml", c.Format)
}
