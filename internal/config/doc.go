// Package config reads userscript metadata configuration and normalizes it.
//
// A configuration arrives in one of two shapes:
//
//	// simple: the object is the metadata
//	{"name": "My script", "match": ["https://example.com/*"]}
//
//	// package: metadata nested under "monkeyscript.meta", with package.json
//	// style top-level fields used as fallbacks
//	{"name": "my-script", "version": "1.0.0",
//	 "monkeyscript": {"meta": {"match": ["https://example.com/*"]}, "useStrict": true}}
//
// The shape is resolved once by Normalize, which returns a flat
// monkeyscript.Metadata and the monkeyscript.BuildOptions. Callers never see
// the raw shape again.
//
// The package also loads the optional project defaults file
// (.monkeyscript.yaml) consumed by the CLI.
package config
