// Package metadata renders, reads and validates UserScript metadata headers.
//
// # Header Format
//
// Userscript managers (Tampermonkey, Greasemonkey, Violentmonkey) read a
// block of line comments at the top of a script:
//
//	// ==UserScript==
//	// @name       Example
//	// @version    1.0.0
//	// @match      https://example.com/*
//	// @grant      GM_addStyle
//	// ==/UserScript==
//
// Labels are right-padded to a common width so values line up. The width
// is the larger of a base (10 by default) and the longest metadata key.
// The id, category and namespace tags are written as "// @tag\t\tvalue"
// instead; existing generated headers depend on that layout.
//
// # Compiling
//
//	c := metadata.NewCompiler(meta, opts, metadata.WithBaseDir(dir))
//	result, err := c.Compile()
//	if err != nil {
//	    // *FieldError, matches monkeyscript.ErrInvalidConfig. No header is produced.
//	}
//	for _, w := range result.Warnings {
//	    logger.Warn("%s", w)
//	}
//
// Fields are emitted in the fixed order of the field table (see Fields).
// Unknown metadata keys are ignored so newer configurations keep working.
//
// After the closing delimiter the compiler may add a 'use strict'; line
// (useStrict in metadata or build options) and a `const css = ...;` line
// holding the content of the prependCSS build option as a template literal.
//
// # Reading
//
// Parse extracts the entries of an existing header, Strip removes a
// previously generated header so a rebuild replaces it instead of stacking.
//
// # Schema
//
// schema.json (embedded) documents every configuration key with its tag as
// title. ValidateSchema checks a metadata mapping against it.
package metadata
