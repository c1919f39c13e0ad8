package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrProjectNotFound is returned when the project defaults file does not exist.
// Callers can check for this with errors.Is(err, config.ErrProjectNotFound).
var ErrProjectNotFound = errors.New("project file not found")

// ProjectConfig holds CLI defaults read from .monkeyscript.yaml.
type ProjectConfig struct {
	Config  string `yaml:"config"`
	Output  string `yaml:"output,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
	BasePad *int   `yaml:"base_pad,omitempty"`
	Replace bool   `yaml:"replace,omitempty"`
}

const ProjectFileName = ".monkeyscript.yaml"

func LoadProject(dir string) (*ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
