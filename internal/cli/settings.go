package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// settings mirrors the command-line flags in the YAML settings file. A nil
// field was not set in the file.
type settings struct {
	Adventure   *string `yaml:"adventure"`
	Dir         *string `yaml:"dir"`
	Entry       *string `yaml:"entry"`
	MaxBranches *int    `yaml:"max-branches"`
	LogLevel    *string `yaml:"log-level"`
	LogFormat   *string `yaml:"log-format"`
	LogFile     *string `yaml:"log-file"`
}

// readSettings decodes the settings file at path. Unknown keys are rejected
// so typos do not go unnoticed.
func readSettings(path string) (*settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open settings file: %w", err)
	}
	defer f.Close()

	var s settings
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	return &s, nil
}
