package config

import (
	"fmt"
	"strings"

	"github.com/mohae/deepcopy"

	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

// Shape identifies which of the two configuration layouts was given.
type Shape int

const (
	// ShapeSimple is a flat metadata object.
	ShapeSimple Shape = iota
	// ShapePackage nests metadata under "monkeyscript.meta".
	ShapePackage
)

func (s Shape) String() string {
	switch s {
	case ShapeSimple:
		return "simple"
	case ShapePackage:
		return "package"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Normalized is the flattened configuration handed to the compiler.
type Normalized struct {
	Shape   Shape
	Meta    monkeyscript.Metadata
	Options monkeyscript.BuildOptions

	// BaseDir is the directory of the configuration file, "" for in-memory input.
	BaseDir string
}

// Normalize classifies src and flattens it. src is never modified.
//
// Simple shape: the metadata is the whole object and the options are empty.
// Package shape: metadata starts from monkeyscript.meta; author, name,
// version and description are copied from the top level when meta lacks
// them; the options are the monkeyscript object itself.
func Normalize(src *Source) (Normalized, error) {
	if src == nil || src.Data == nil {
		return Normalized{}, fmt.Errorf("could not create a new project: %w", monkeyscript.ErrNoConfig)
	}

	data, ok := deepcopy.Copy(src.Data).(map[string]any)
	if !ok {
		return Normalized{}, &SourceError{Origin: src.Origin, Message: "configuration could not be copied"}
	}

	reserved, tagged := data[monkeyscript.ReservedKey]
	if !tagged && !src.Package {
		return Normalized{
			Shape:   ShapeSimple,
			Meta:    monkeyscript.Metadata(data),
			Options: monkeyscript.BuildOptions{},
			BaseDir: src.BaseDir(),
		}, nil
	}

	options := map[string]any{}
	if reserved != nil {
		options, ok = reserved.(map[string]any)
		if !ok {
			return Normalized{}, &SourceError{
				Origin:  src.Origin,
				Message: fmt.Sprintf("%q must be an object", monkeyscript.ReservedKey),
			}
		}
	}

	meta := map[string]any{}
	if raw := options[monkeyscript.MetaKey]; raw != nil {
		meta, ok = raw.(map[string]any)
		if !ok {
			return Normalized{}, &SourceError{
				Origin:  src.Origin,
				Message: fmt.Sprintf("%q must be an object", monkeyscript.ReservedKey+"."+monkeyscript.MetaKey),
			}
		}
	}

	for _, key := range monkeyscript.FallbackKeys {
		if _, exists := meta[key]; exists {
			continue
		}
		value, exists := data[key]
		if !exists {
			continue
		}
		if key == "author" {
			value = formatPerson(value)
		}
		meta[key] = value
	}

	return Normalized{
		Shape:   ShapePackage,
		Meta:    monkeyscript.Metadata(meta),
		Options: monkeyscript.BuildOptions(options),
		BaseDir: src.BaseDir(),
	}, nil
}

// formatPerson renders an npm person object as "Name <email> (url)".
// Other values are returned unchanged.
func formatPerson(v any) any {
	person, ok := v.(map[string]any)
	if !ok {
		return v
	}
	name, _ := person["name"].(string)
	if name == "" {
		return v
	}

	var b strings.Builder
	b.WriteString(name)
	if email, _ := person["email"].(string); email != "" {
		b.WriteString(" <" + email + ">")
	}
	if url, _ := person["url"].(string); url != "" {
		b.WriteString(" (" + url + ")")
	}
	return b.String()
}
