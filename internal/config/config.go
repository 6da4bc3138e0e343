// Package config loads cmd/regexfsm's optional YAML configuration file
// (§4.12), grounded on projectdiscovery-alterx's Config/NewConfig
// YAML-via-gopkg.in/yaml.v3 pattern.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the dotfile the CLI looks for in the working directory.
const FileName = ".regexfsm.yaml"

// Config holds the CLI's user-tunable behavior.
type Config struct {
	ColorOutput       bool   `yaml:"color_output"`
	StrictEquivalence bool   `yaml:"strict_equivalence"`
	DefaultFormat     string `yaml:"default_format"`
}

// Default returns the configuration used when no file is present:
// colorized output on, simulator disagreement tolerated outside tests,
// and text summaries rather than DOT.
func Default() *Config {
	return &Config{
		ColorOutput:       true,
		StrictEquivalence: false,
		DefaultFormat:     "text",
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default() so a partial file only overrides the fields it sets.
func Load(path string) (*Config, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(bin, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
