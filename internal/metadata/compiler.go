package metadata

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mohae/deepcopy"

	"github.com/vvka-141/monkeyscript/internal/files/filesystem"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

const (
	OpenDelimiter   = "// ==UserScript=="
	CloseDelimiter  = "// ==/UserScript=="
	StrictDirective = "'use strict';"

	// CSSVariable names the constant holding inlined CSS.
	CSSVariable = "css"
)

// Result is the output of one compilation.
type Result struct {
	Header   string
	Warnings []Warning
}

// Compiler renders a UserScript header from normalized metadata.
// A Compiler owns copies of its inputs and is immutable after construction;
// Compile may be called any number of times.
type Compiler struct {
	meta     monkeyscript.Metadata
	opts     monkeyscript.BuildOptions
	basePad  int
	padWidth int
	files    filesystem.Reader
	baseDir  string
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithBasePad sets the minimum label width. Negative values are treated as 0.
func WithBasePad(n int) Option {
	return func(c *Compiler) {
		if n < 0 {
			n = 0
		}
		c.basePad = n
	}
}

// WithFileReader sets the reader used for the prependCSS file.
func WithFileReader(r filesystem.Reader) Option {
	return func(c *Compiler) {
		if r != nil {
			c.files = r
		}
	}
}

// WithBaseDir sets the directory a relative prependCSS path resolves against.
func WithBaseDir(dir string) Option {
	return func(c *Compiler) { c.baseDir = dir }
}

// NewCompiler creates a Compiler with base pad DefaultBasePad reading files
// from the OS filesystem unless overridden by options.
func NewCompiler(meta monkeyscript.Metadata, opts monkeyscript.BuildOptions, options ...Option) *Compiler {
	c := &Compiler{
		meta:    monkeyscript.Metadata{},
		opts:    monkeyscript.BuildOptions{},
		basePad: monkeyscript.DefaultBasePad,
		files:   filesystem.NewOSFileSystem(),
	}
	if meta != nil {
		c.meta = deepcopy.Copy(meta).(monkeyscript.Metadata)
	}
	if opts != nil {
		c.opts = deepcopy.Copy(opts).(monkeyscript.BuildOptions)
	}
	for _, opt := range options {
		opt(c)
	}
	c.padWidth = PadWidth(c.meta, c.basePad)
	return c
}

// PadWidth returns max(base, longest key in meta).
func PadWidth(meta monkeyscript.Metadata, base int) int {
	width := base
	for key := range meta {
		if n := utf8.RuneCountInString(key); n > width {
			width = n
		}
	}
	return width
}

// PadWidth returns the label width used by this compiler.
func (c *Compiler) PadWidth() int { return c.padWidth }

// Line formats one padded metadata line.
func (c *Compiler) Line(label, value string) string {
	return fmt.Sprintf("// @%-*s %s\n", c.padWidth, label, value)
}

// Compile renders the header. On a *FieldError nothing is returned.
func (c *Compiler) Compile() (*Result, error) {
	var b strings.Builder
	var diag Diagnostics

	b.WriteString(OpenDelimiter + "\n")
	for _, f := range fieldTable {
		if err := c.emit(&b, f, &diag); err != nil {
			return nil, err
		}
	}
	b.WriteString(CloseDelimiter + "\n")

	if strictMode(c.meta, c.opts) {
		b.WriteString(StrictDirective + "\n")
	}

	if path := c.opts.PrependCSS(); path != "" {
		if line, ok := c.cssLine(path, &diag); ok {
			b.WriteString(line)
		}
	}

	b.WriteString("\n")

	return &Result{Header: b.String(), Warnings: diag.Warnings()}, nil
}

func (c *Compiler) emit(b *strings.Builder, f Field, diag *Diagnostics) error {
	value, present := c.meta[f.Key]
	if !present || value == nil {
		return nil
	}
	if f.WhenSet && !monkeyscript.Truthy(value) {
		return nil
	}

	switch f.Kind {
	case KindScalar:
		c.warn(f, diag)
		b.WriteString(c.Line(f.Label, formatValue(value)))

	case KindTabbed:
		b.WriteString("// @" + f.Label + "\t\t" + formatValue(value) + "\n")

	case KindFlag:
		if monkeyscript.Truthy(value) {
			b.WriteString("// @" + f.Label + "\n")
		}

	case KindList:
		items, err := listValue(f, value)
		if err != nil {
			return err
		}
		c.warn(f, diag)
		for i, item := range items {
			s := formatValue(item)
			if f.Forbid != "" && strings.ContainsAny(s, f.Forbid) {
				return &FieldError{
					Field:   f.Key,
					Index:   i,
					Message: fmt.Sprintf("%q contains a forbidden character (%s)", s, f.Forbid),
					Hint:    f.ForbidHint,
				}
			}
			b.WriteString(c.Line(f.Label, s))
		}

	case KindResource:
		items, err := listValue(f, value)
		if err != nil {
			return err
		}
		c.warn(f, diag)
		for i, item := range items {
			name, url, ok := singleEntry(item)
			if !ok {
				return &FieldError{
					Field:   f.Key,
					Index:   i,
					Message: fmt.Sprintf("expected an object with one name/URL pair, but got %s", typeName(item)),
					Hint:    `Write resources as [{"name": "https://example.com/file"}].`,
				}
			}
			b.WriteString(c.Line(f.Label, name+" "+formatValue(url)))
		}
	}
	return nil
}

func (c *Compiler) warn(f Field, diag *Diagnostics) {
	if f.Warn == nil {
		return
	}
	if msg := f.Warn(c.meta, c.opts); msg != "" {
		diag.Warn(f.Key, "%s", msg)
	}
}

// cssLine reads the CSS file and renders the constant declaration.
// A read failure is a warning; the line is then omitted.
func (c *Compiler) cssLine(path string, diag *Diagnostics) (string, bool) {
	resolved := path
	if c.baseDir != "" && !filepath.IsAbs(path) {
		resolved = filepath.Join(c.baseDir, path)
	}

	content, err := c.files.ReadFile(resolved)
	if err != nil {
		diag.Warn(monkeyscript.PrependCSSKey, "could not read CSS file %s: %v", resolved, err)
		return "", false
	}
	return "const " + CSSVariable + " = " + EncodeTemplateLiteral(string(content)) + ";\n", true
}

// listValue enforces the array contract of list and resource fields.
func listValue(f Field, v any) ([]any, error) {
	if items, ok := v.([]any); ok {
		return items, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, nil
	}

	return nil, &FieldError{
		Field:   f.Key,
		Index:   -1,
		Message: fmt.Sprintf("expected an array, but got %s", typeName(v)),
		Hint:    fmt.Sprintf(`Wrap the value in a list: "%s": [...]`, f.Key),
	}
}

// singleEntry unpacks a mapping with exactly one string key.
func singleEntry(v any) (string, any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Len() != 1 || rv.Type().Key().Kind() != reflect.String {
		return "", nil, false
	}
	iter := rv.MapRange()
	iter.Next()
	return iter.Key().String(), iter.Value().Interface(), true
}

// formatValue renders a configuration value the way a script would print it.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// typeName names a value's type in configuration terms.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, uint64, json.Number:
		return "number"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}
