package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.content, nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	for _, entry := range d.fs.entriesUnder(d.absPath) {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()
			callbackErr = fn(entry, nil)
		}()
		if callbackErr != nil {
			return callbackErr
		}
	}
	return nil
}

// MemoryFileSystem implements Provider for in-memory testing.
// Paths are slash separated; relative paths resolve against the root.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newMemoryDir(root, ".")
	return mfs
}

func newMemoryDir(absPath, relPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		relPath: relPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.put(filePath, []byte(content))
}

// WriteFile implements Provider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	abs := mfs.resolve(filePath)
	mfs.mu.RLock()
	existing, ok := mfs.files[abs]
	mfs.mu.RUnlock()
	if ok && existing.info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	content := make([]byte, len(data))
	copy(content, data)
	mfs.put(filePath, content)
	return nil
}

func (mfs *MemoryFileSystem) put(filePath string, content []byte) {
	absPath := mfs.resolve(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// ensureDirectoriesExist creates directory entries for all parent directories.
// Caller holds mu.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = newMemoryDir(dir, mfs.relative(dir))
	mfs.ensureDirectoriesExist(dir)
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) relative(absPath string) string {
	if absPath == mfs.root {
		return "."
	}
	return strings.TrimPrefix(absPath, strings.TrimSuffix(mfs.root, "/")+"/")
}

// entriesUnder returns all entries at or below basePath sorted by path,
// with RelativePath recomputed against basePath.
func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryFile {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	prefix := strings.TrimSuffix(basePath, "/") + "/"
	var entries []*memoryFile
	for p, file := range mfs.files {
		if p != basePath && !strings.HasPrefix(p, prefix) {
			continue
		}
		rel := "."
		if p != basePath {
			rel = strings.TrimPrefix(p, prefix)
		}
		entries = append(entries, &memoryFile{
			absPath: file.absPath,
			relPath: rel,
			content: file.content,
			info:    file.info,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})
	return entries
}

// Open implements Provider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	mfs.mu.RLock()
	file, exists := mfs.files[absPath]
	mfs.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("directory not found: %s: %w", openPath, fs.ErrNotExist)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements Provider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)

	mfs.mu.RLock()
	file, exists := mfs.files[absPath]
	mfs.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return file.content, nil
}

// Stat implements Provider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	mfs.mu.RLock()
	file, exists := mfs.files[absPath]
	mfs.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}
