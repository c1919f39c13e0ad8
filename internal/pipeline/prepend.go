package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// File is a unit travelling through the pipeline. Exactly one of Contents
// and Stream is set for a regular file; a file with neither is null.
type File struct {
	Path     string
	Contents []byte
	Stream   io.Reader
}

// IsNull reports whether f carries no contents at all.
func (f *File) IsNull() bool {
	return f == nil || (f.Contents == nil && f.Stream == nil)
}

// IsStream reports whether f carries streamed contents.
func (f *File) IsStream() bool {
	return f != nil && f.Stream != nil
}

// HeaderFunc computes the header for a single file.
type HeaderFunc func(*File) string

// ErrNoHeaderFunc is returned by Apply on a Prepender built without a header.
var ErrNoHeaderFunc = errors.New("no header function configured")

// Prepender puts a header in front of file contents.
type Prepender struct {
	header HeaderFunc
}

// NewPrepender returns a Prepender writing the same header to every file.
func NewPrepender(header string) *Prepender {
	return &Prepender{header: func(*File) string { return header }}
}

// NewPrependerFunc returns a Prepender asking fn for each file's header.
func NewPrependerFunc(fn HeaderFunc) *Prepender {
	return &Prepender{header: fn}
}

// Apply returns a new File with the header in front of f's contents.
// Null files are returned as is. Streamed files stay streamed; the header
// is read before the original stream, which is consumed lazily.
func (p *Prepender) Apply(f *File) (*File, error) {
	if f.IsNull() {
		return f, nil
	}
	if p == nil || p.header == nil {
		return nil, ErrNoHeaderFunc
	}

	header := p.header(f)
	out := &File{Path: f.Path}

	if f.IsStream() {
		out.Stream = io.MultiReader(strings.NewReader(header), f.Stream)
		return out, nil
	}

	out.Contents = make([]byte, 0, len(header)+len(f.Contents))
	out.Contents = append(out.Contents, header...)
	out.Contents = append(out.Contents, f.Contents...)
	return out, nil
}

// Transform applies the header to every file, keeping their order.
func (p *Prepender) Transform(files []*File) ([]*File, error) {
	out := make([]*File, 0, len(files))
	for _, f := range files {
		result, err := p.Apply(f)
		if err != nil {
			path := "<null>"
			if f != nil {
				path = f.Path
			}
			return nil, fmt.Errorf("failed to prepend header to %s: %w", path, err)
		}
		out = append(out, result)
	}
	return out, nil
}
