package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/monkeyscript/internal/files/filesystem"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

func TestLoad_JSON(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/proj")
	mfs.AddFile("meta.json", `{"name": "Example", "version": 2, "match": ["https://a/*"]}`)

	src, err := Load(mfs, "/proj/meta.json")
	require.NoError(t, err)

	assert.Equal(t, "Example", src.Data["name"])
	assert.Equal(t, float64(2), src.Data["version"])
	assert.False(t, src.Package)
	assert.Equal(t, "/proj", src.BaseDir())
}

func TestLoad_YAML(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/proj")
	mfs.AddFile("meta.yaml", `
author: A
monkeyscript:
  prependCSS: style.css
  meta:
    match:
      - https://a/*
      - https://b/*
`)

	src, err := Load(mfs, "/proj/meta.yaml")
	require.NoError(t, err)

	n, err := Normalize(src)
	require.NoError(t, err)
	assert.Equal(t, ShapePackage, n.Shape)
	assert.Equal(t, "A", n.Meta["author"])
	assert.Equal(t, []any{"https://a/*", "https://b/*"}, n.Meta["match"])
	assert.Equal(t, "style.css", n.Options.PrependCSS())
}

func TestLoad_PackageJSON(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/proj")
	mfs.AddFile("package.json", `{"name": "pkg", "version": "0.1.0", "scripts": {"build": "x"}}`)

	src, err := Load(mfs, "/proj/package.json")
	require.NoError(t, err)
	assert.True(t, src.Package)

	n, err := Normalize(src)
	require.NoError(t, err)
	assert.Equal(t, monkeyscript.Metadata{"name": "pkg", "version": "0.1.0"}, n.Meta)
}

func TestLoad_Errors(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/proj")
	mfs.AddFile("broken.json", `{"name": `)
	mfs.AddFile("array.json", `["a"]`)
	mfs.AddFile("broken.yml", "a: [")

	tests := []struct {
		name string
		path string
		want error
	}{
		{"empty path", "", monkeyscript.ErrNoConfig},
		{"missing", "/proj/missing.json", monkeyscript.ErrInvalidSource},
		{"invalid json", "/proj/broken.json", monkeyscript.ErrInvalidSource},
		{"not an object", "/proj/array.json", monkeyscript.ErrInvalidSource},
		{"invalid yaml", "/proj/broken.yml", monkeyscript.ErrInvalidSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Load(mfs, tt.path)
			require.Error(t, err)
			assert.Nil(t, src)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestFromValue(t *testing.T) {
	type person struct {
		Name string `json:"name"`
	}

	src, err := FromValue(person{Name: "struct"})
	require.NoError(t, err)
	assert.Equal(t, "struct", src.Data["name"])
	assert.Equal(t, ObjectOrigin, src.Origin)
	assert.Equal(t, "", src.BaseDir())

	_, err = FromValue(nil)
	assert.True(t, errors.Is(err, monkeyscript.ErrNoConfig))

	_, err = FromValue("package.json")
	assert.True(t, errors.Is(err, monkeyscript.ErrInvalidSource))

	_, err = FromValue(map[string]any{"bad": make(chan int)})
	assert.True(t, errors.Is(err, monkeyscript.ErrInvalidSource))
}

func TestFromValue_Clones(t *testing.T) {
	input := map[string]any{"match": []string{"https://a/*"}}
	src, err := FromValue(input)
	require.NoError(t, err)

	src.Data["match"].([]any)[0] = "changed"
	assert.Equal(t, []string{"https://a/*"}, input["match"])
}

func TestSourceError_Message(t *testing.T) {
	err := &SourceError{Origin: "x.json", Message: "could not parse JSON file", Err: errors.New("unexpected EOF")}
	assert.Equal(t, "invalid configuration source x.json: could not parse JSON file: unexpected EOF", err.Error())
	assert.True(t, errors.Is(err, monkeyscript.ErrInvalidSource))
}
