package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/monkeyscript/internal/files/filesystem"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

// ObjectOrigin is the Source.Origin of configurations passed in memory.
const ObjectOrigin = "<object>"

// Source is a raw configuration as read from a file or passed in memory.
type Source struct {
	// Data is the decoded configuration object. It is owned by the Source.
	Data map[string]any

	// Origin is the file path the configuration was read from, or ObjectOrigin.
	Origin string

	// Package forces package shape even without the reserved key.
	// Set for files named package.json.
	Package bool
}

// BaseDir returns the directory relative paths in the configuration
// (such as the CSS file) resolve against. Empty for in-memory sources.
func (s *Source) BaseDir() string {
	if s.Origin == "" || s.Origin == ObjectOrigin {
		return ""
	}
	return filepath.Dir(s.Origin)
}

// SourceError reports a configuration that could not be read, parsed,
// or is not an object. It matches monkeyscript.ErrInvalidSource.
type SourceError struct {
	Origin  string
	Message string
	Err     error
}

func (e *SourceError) Error() string {
	msg := fmt.Sprintf("invalid configuration source %s: %s", e.Origin, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SourceError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, monkeyscript.ErrInvalidSource) succeed.
func (e *SourceError) Is(target error) bool {
	return target == monkeyscript.ErrInvalidSource
}

// Load reads a configuration file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func Load(fsys filesystem.Reader, path string) (*Source, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("could not create a new project: %w", monkeyscript.ErrNoConfig)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, &SourceError{Origin: path, Message: "could not read file", Err: err}
	}

	var decoded any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, &SourceError{Origin: path, Message: "could not parse YAML file", Err: err}
		}
	default:
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, &SourceError{Origin: path, Message: "could not parse JSON file", Err: err}
		}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, &SourceError{Origin: path, Message: "the provided configuration must be an object"}
	}

	return &Source{
		Data:    obj,
		Origin:  path,
		Package: filepath.Base(path) == monkeyscript.PackageManifest,
	}, nil
}

// FromValue builds a Source from an in-memory value. The value is cloned
// through JSON so the Source never aliases caller-owned data and only holds
// plain JSON types.
func FromValue(v any) (*Source, error) {
	if v == nil {
		return nil, fmt.Errorf("could not create a new project: %w", monkeyscript.ErrNoConfig)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, &SourceError{Origin: ObjectOrigin, Message: "value is not JSON serializable", Err: err}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &SourceError{Origin: ObjectOrigin, Message: "value is not JSON serializable", Err: err}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, &SourceError{Origin: ObjectOrigin, Message: "the provided configuration must be an object"}
	}
	return &Source{Data: obj, Origin: ObjectOrigin}, nil
}
