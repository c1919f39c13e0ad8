package monkeyscript

// Metadata is the flat, normalized userscript metadata mapping.
// Keys are metadata field names (see the compiler's field table); values
// are strings, numbers, booleans, arrays of those, or for "resource" an
// array of single-entry mappings. Unknown keys are carried but not rendered.
type Metadata map[string]any

// Has reports whether key is present with a non-nil value.
func (m Metadata) Has(key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

// Keys returns the metadata keys in no particular order.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// BuildOptions holds non-metadata build directives.
type BuildOptions map[string]any

// PrependCSS returns the path of the CSS file to inline, or "".
func (o BuildOptions) PrependCSS() string {
	if o == nil {
		return ""
	}
	s, _ := o[PrependCSSKey].(string)
	return s
}

// UseStrict reports whether the build options request strict mode.
func (o BuildOptions) UseStrict() bool {
	if o == nil {
		return false
	}
	return Truthy(o[UseStrictKey])
}

// Truthy reports whether a configuration value counts as "set": true,
// non-empty strings, non-zero numbers and any array or mapping.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	default:
		return true
	}
}
