package metadata

import (
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

// Kind describes how a field is rendered.
type Kind int

const (
	// KindScalar renders one padded line when the key is present.
	KindScalar Kind = iota
	// KindTabbed renders "// @tag\t\tvalue" instead of the padded format.
	KindTabbed
	// KindList requires an array and renders one padded line per element.
	KindList
	// KindResource requires an array of single-entry mappings and renders
	// "// @resource <name> <url>" per element.
	KindResource
	// KindFlag renders "// @tag" with no value when the key is truthy.
	KindFlag
)

// Field is one row of the field table.
type Field struct {
	// Key is the metadata key read from the configuration.
	Key string
	// Label is the tag written after "@".
	Label string
	Kind  Kind
	// WhenSet emits the line only for truthy values rather than any present value.
	WhenSet bool
	// Forbid lists characters rejected in list elements.
	Forbid string
	// ForbidHint explains a Forbid rejection.
	ForbidHint string
	// Warn returns a non-fatal warning for a present field, or "".
	Warn func(meta monkeyscript.Metadata, opts monkeyscript.BuildOptions) string
}

// fieldTable is the canonical emission order.
var fieldTable = []Field{
	{Key: "author", Label: "author"},
	{Key: "name", Label: "name"},
	{Key: "id", Label: "id", Kind: KindTabbed},
	{Key: "category", Label: "category", Kind: KindTabbed},
	{Key: "namespace", Label: "namespace", Kind: KindTabbed},
	{Key: "version", Label: "version"},
	{Key: "description", Label: "description"},
	{Key: "copyright", Label: "copyright"},
	{Key: "homepage", Label: "homepage"},
	{Key: "homepageUrl", Label: "homepageURL"},
	{Key: "supportUrl", Label: "supportURL"},
	{Key: "website", Label: "website"},
	{Key: "source", Label: "source"},
	{Key: "icon", Label: "icon"},
	{Key: "iconUrl", Label: "iconURL"},
	{Key: "defaultIcon", Label: "defaulticon"},
	{Key: "icon64", Label: "icon64"},
	{Key: "icon64Url", Label: "icon64URL"},
	{Key: "noCompat", Label: "nocompat"},
	{Key: "runAt", Label: "run-at"},
	{Key: "updateUrl", Label: "updateURL", WhenSet: true, Warn: warnUpdateWithoutVersion},
	{Key: "downloadUrl", Label: "downloadURL", WhenSet: true},
	{
		Key: "include", Label: "include", Kind: KindList,
		Forbid:     "#",
		ForbidHint: "URLs with a hash parameter are not supported by @include matching; remove the fragment",
	},
	{Key: "match", Label: "match", Kind: KindList},
	{Key: "exclude", Label: "exclude", Kind: KindList},
	{Key: "require", Label: "require", Kind: KindList, Warn: warnRequireStrict},
	{Key: "resource", Label: "resource", Kind: KindResource},
	{Key: "connect", Label: "connect", Kind: KindList},
	{Key: "domain", Label: "domain", Kind: KindList},
	{Key: "grant", Label: "grant", Kind: KindList},
	{Key: "noFrames", Label: "noframes", Kind: KindFlag},
	{Key: "unwrap", Label: "unwrap", Kind: KindFlag},
}

// Fields returns a copy of the field table in emission order.
func Fields() []Field {
	out := make([]Field, len(fieldTable))
	copy(out, fieldTable)
	return out
}

// LookupKey returns the field rendered for a metadata key.
func LookupKey(key string) (Field, bool) {
	for _, f := range fieldTable {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func warnUpdateWithoutVersion(meta monkeyscript.Metadata, _ monkeyscript.BuildOptions) string {
	if monkeyscript.Truthy(meta["version"]) {
		return ""
	}
	return "version was not present but it is required for updateURL to work"
}

func warnRequireStrict(meta monkeyscript.Metadata, opts monkeyscript.BuildOptions) string {
	if !strictMode(meta, opts) {
		return ""
	}
	return "useStrict might influence the @require scripts"
}

func strictMode(meta monkeyscript.Metadata, opts monkeyscript.BuildOptions) bool {
	return monkeyscript.Truthy(meta[monkeyscript.UseStrictKey]) || opts.UseStrict()
}
