/*
File    : pixelscript/internal/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package config loads the host configuration pixelscript's CLI and web
server read at startup: listen address, where uploaded/filtered images
live, an upload size cap, and the evaluator's optional step budget.
Configured via YAML (gopkg.in/yaml.v3), matching the rest of the
stack's idiom.
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of host-level knobs. Zero-valued fields fall
// back to Defaults() when missing from the YAML file.
type Config struct {
	Addr           string `yaml:"addr"`
	StaticDir      string `yaml:"static_dir"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	StepBudget     int    `yaml:"step_budget"`
}

// Defaults returns the configuration used when no file is present or a
// field is left unset.
func Defaults() Config {
	return Config{
		Addr:           ":7272",
		StaticDir:      "static",
		MaxUploadBytes: 10 << 20, // 10 MiB
		StepBudget:     0,        // unbounded
	}
}

// Load reads a YAML config file at path, filling in any field the file
// omits from Defaults(). A missing file is not an error -- it just
// yields the defaults, since every field has a sensible one.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if override.Addr != "" {
		cfg.Addr = override.Addr
	}
	if override.StaticDir != "" {
		cfg.StaticDir = override.StaticDir
	}
	if override.MaxUploadBytes != 0 {
		cfg.MaxUploadBytes = override.MaxUploadBytes
	}
	if override.StepBudget != 0 {
		cfg.StepBudget = override.StepBudget
	}
	return cfg, nil
}
