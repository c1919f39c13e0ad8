package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the slash separated path relative to the walked root
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree in lexical order, calling fn for each
	// file and directory. If fn returns an error, walking stops.
	Walk(fn func(File, error) error) error
}

// Reader is the narrow read-only view used by the compiler and config loader.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// Provider is the full filesystem used by the build pipeline.
type Provider interface {
	Reader

	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// WriteFile writes data to path, creating parent directories as needed
	WriteFile(path string, data []byte) error

	// Stat returns file information for the given path.
	// Missing paths yield an error matching fs.ErrNotExist.
	Stat(path string) (FileInfo, error)
}
