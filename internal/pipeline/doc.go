// Package pipeline prepends a compiled UserScript header to files.
//
// A Prepender works on single files: buffered contents get the header
// concatenated in front, streamed contents get it spliced in through a
// reader, and null files pass through untouched. The header may be a fixed
// string or computed per file.
//
// A Builder drives a Prepender over a filesystem.Provider, building one file
// or every file under a directory that matches a doublestar pattern.
package pipeline
