package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/monkeyscript/internal/metadata"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

const demoConfig = `{"name": "Demo", "version": "1.0.0", "match": ["https://example.com/*"]}`

const demoHeader = "// ==UserScript==\n" +
	"// @name       Demo\n" +
	"// @version    1.0.0\n" +
	"// @match      https://example.com/*\n" +
	"// ==/UserScript==\n" +
	"\n"

func TestHeaderCmd_DefaultConfigFile(t *testing.T) {
	projectDir(t, map[string]string{"monkeyscript.json": demoConfig})

	out, err := executeCommand(t, "header")
	require.NoError(t, err)
	assert.Equal(t, demoHeader, out)
}

func TestHeaderCmd_PackageJSON(t *testing.T) {
	projectDir(t, map[string]string{"package.json": `{
		"name": "pkg-script",
		"version": "2.0.0",
		"author": {"name": "Jane", "email": "jane@example.com"},
		"monkeyscript": {"meta": {"version": "9.9.9", "grant": ["none"]}, "useStrict": true}
	}`})

	out, err := executeCommand(t, "header")
	require.NoError(t, err)
	assert.Contains(t, out, "// @name       pkg-script\n")
	assert.Contains(t, out, "// @version    9.9.9\n")
	assert.Contains(t, out, "// @author     Jane <jane@example.com>\n")
	assert.True(t, strings.HasSuffix(out, "// ==/UserScript==\n'use strict';\n\n"))
}

func TestHeaderCmd_ConfigFlagYAMLAndBasePad(t *testing.T) {
	projectDir(t, map[string]string{"meta/userscript.yaml": "name: Demo\nnoFrames: true\n"})

	out, err := executeCommand(t, "header", "-c", "meta/userscript.yaml", "--base-pad", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "// @name         Demo\n")
	assert.Contains(t, out, "// @noframes\n")
}

func TestHeaderCmd_ProjectFileAndCSS(t *testing.T) {
	projectDir(t, map[string]string{
		".monkeyscript.yaml": "config: conf/meta.json\nbase_pad: 4\n",
		"conf/meta.json":     `{"monkeyscript": {"meta": {"name": "x"}, "prependCSS": "style.css"}}`,
		"conf/style.css":     "#just-for-tests {}\n",
	})

	out, err := executeCommand(t, "header")
	require.NoError(t, err)
	assert.Contains(t, out, "// @name x\n")
	assert.Contains(t, out, "const css = `#just-for-tests {}\n`;\n")
}

func TestHeaderCmd_EnvironmentFromDotEnv(t *testing.T) {
	projectDir(t, map[string]string{
		".env":         "MONKEYSCRIPT_CONFIG=custom.json\n",
		"custom.json":  demoConfig,
		"package.json": `{"name": "ignored"}`,
	})
	t.Cleanup(func() { os.Unsetenv(ConfigEnv) })

	out, err := executeCommand(t, "header")
	require.NoError(t, err)
	assert.Equal(t, demoHeader, out)
}

func TestHeaderCmd_OutputFile(t *testing.T) {
	dir := projectDir(t, map[string]string{"monkeyscript.json": demoConfig})

	out, err := executeCommand(t, "header", "-o", "dist/header.js")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, demoHeader, readFile(t, filepath.Join(dir, "dist", "header.js")))
}

func TestHeaderCmd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		args     []string
		wantCode int
	}{
		{"no configuration", nil, nil, monkeyscript.ExitSourceError},
		{"not an object", map[string]string{"monkeyscript.json": `[1, 2]`}, nil, monkeyscript.ExitSourceError},
		{"malformed json", map[string]string{"monkeyscript.json": `{`}, nil, monkeyscript.ExitSourceError},
		{"string instead of array", map[string]string{"monkeyscript.json": `{"match": "https://a/*"}`}, nil, monkeyscript.ExitConfigError},
		{"hash in include", map[string]string{"monkeyscript.json": `{"include": ["https://a/#x"]}`}, nil, monkeyscript.ExitConfigError},
		{"unknown flag", map[string]string{"monkeyscript.json": demoConfig}, []string{"--nope"}, monkeyscript.ExitUsageError},
		{"negative pad", map[string]string{"monkeyscript.json": demoConfig}, []string{"--base-pad", "-2"}, monkeyscript.ExitUsageError},
		{"positional argument", map[string]string{"monkeyscript.json": demoConfig}, []string{"extra"}, monkeyscript.ExitUsageError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectDir(t, tt.files)

			out, err := executeCommand(t, append([]string{"header"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, monkeyscript.ExitCodeForError(err), "error: %v", err)
			assert.NotContains(t, out, "==UserScript==")
		})
	}
}

func TestBuildCmd_StreamToStdout(t *testing.T) {
	projectDir(t, map[string]string{
		"monkeyscript.json": demoConfig,
		"src/main.js":       "main();\n",
	})

	out, err := executeCommand(t, "build", "src/main.js")
	require.NoError(t, err)
	assert.Equal(t, demoHeader+"main();\n", out)
}

func TestBuildCmd_FileAndReplace(t *testing.T) {
	dir := projectDir(t, map[string]string{
		"monkeyscript.json": demoConfig,
		"src/main.js":       "main();\n",
	})
	target := filepath.Join(dir, "dist", "main.user.js")

	_, err := executeCommand(t, "build", "src/main.js", "-o", "dist/main.user.js")
	require.NoError(t, err)
	assert.Equal(t, demoHeader+"main();\n", readFile(t, target))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "monkeyscript.json"),
		[]byte(`{"name": "Demo", "version": "1.0.1", "match": ["https://example.com/*"]}`), 0644))

	_, err = executeCommand(t, "build", "dist/main.user.js", "-o", "dist/main.user.js", "--replace")
	require.NoError(t, err)

	rebuilt := readFile(t, target)
	assert.Equal(t, strings.Replace(demoHeader, "1.0.0", "1.0.1", 1)+"main();\n", rebuilt)
	assert.Equal(t, 1, strings.Count(rebuilt, "==UserScript=="))

	out, err := executeCommand(t, "build", "dist/main.user.js", "--replace")
	require.NoError(t, err)
	assert.Equal(t, rebuilt, out)
}

func TestBuildCmd_Directory(t *testing.T) {
	dir := projectDir(t, map[string]string{
		".monkeyscript.yaml": "config: monkeyscript.json\noutput: out\npattern: \"**/*.user.js\"\n",
		"monkeyscript.json":  demoConfig,
		"src/a.user.js":      "a();",
		"src/lib/b.user.js":  "b();",
		"src/helper.js":      "helper();",
	})

	_, err := executeCommand(t, "build", "src")
	require.NoError(t, err)

	assert.Equal(t, demoHeader+"a();", readFile(t, filepath.Join(dir, "out", "a.user.js")))
	assert.Equal(t, demoHeader+"b();", readFile(t, filepath.Join(dir, "out", "lib", "b.user.js")))
	_, err = os.Stat(filepath.Join(dir, "out", "helper.js"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestBuildCmd_Args(t *testing.T) {
	projectDir(t, map[string]string{"monkeyscript.json": demoConfig})

	_, err := executeCommand(t, "build")
	require.Error(t, err)
	assert.Equal(t, monkeyscript.ExitUsageError, monkeyscript.ExitCodeForError(err))
	assert.Contains(t, err.Error(), "missing required argument: <source>")

	_, err = executeCommand(t, "build", "missing.js")
	require.Error(t, err)
	assert.Equal(t, monkeyscript.ExitGeneralError, monkeyscript.ExitCodeForError(err))
}

func TestValidateCmd_JSON(t *testing.T) {
	projectDir(t, map[string]string{
		"monkeyscript.json": `{"name": "Demo", "updateUrl": "https://example.com/u.js", "custom": 1}`,
	})

	out, err := executeCommand(t, "validate", "--json")
	require.NoError(t, err)

	var report validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Valid)
	assert.Equal(t, "simple", report.Shape)
	assert.Empty(t, report.SchemaErrors)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "updateURL")
}

func TestValidateCmd_SchemaViolation(t *testing.T) {
	projectDir(t, map[string]string{"monkeyscript.json": `{"name": "Demo", "unwrap": "yes"}`})

	out, err := executeCommand(t, "validate")
	require.Error(t, err)
	assert.Equal(t, monkeyscript.ExitConfigError, monkeyscript.ExitCodeForError(err))
	assert.Contains(t, out, "schema:")
}

func TestValidateCmd_CompileError(t *testing.T) {
	projectDir(t, map[string]string{"monkeyscript.json": `{"resource": [{"a": "1", "b": "2"}]}`})

	out, err := executeCommand(t, "validate", "--json")
	require.Error(t, err)

	var fieldErr *metadata.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "resource", fieldErr.Field)

	var report validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Valid)
	assert.NotEmpty(t, report.CompileError)
}

func TestInspectCmd(t *testing.T) {
	dir := projectDir(t, map[string]string{"monkeyscript.json": demoConfig, "main.js": "x();"})

	_, err := executeCommand(t, "build", "main.js", "-o", "main.user.js")
	require.NoError(t, err)

	out, err := executeCommand(t, "inspect", filepath.Join(dir, "main.user.js"), "--json")
	require.NoError(t, err)

	var entries []inspectEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []inspectEntry{
		{Tag: "name", Value: "Demo"},
		{Tag: "version", Value: "1.0.0"},
		{Tag: "match", Value: "https://example.com/*"},
	}, entries)

	out, err = executeCommand(t, "inspect", "main.user.js")
	require.NoError(t, err)
	assert.Contains(t, out, "@version  1.0.0")
}

func TestInspectCmd_NoHeader(t *testing.T) {
	projectDir(t, map[string]string{"plain.js": "x();"})

	_, err := executeCommand(t, "inspect", "plain.js")
	require.Error(t, err)
	assert.True(t, errors.Is(err, metadata.ErrNoHeader))
}
