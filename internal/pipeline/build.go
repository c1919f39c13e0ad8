package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vvka-141/monkeyscript/internal/checksum"
	"github.com/vvka-141/monkeyscript/internal/files/filesystem"
	"github.com/vvka-141/monkeyscript/internal/logging"
	"github.com/vvka-141/monkeyscript/internal/metadata"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

// DefaultPattern selects the files BuildDir processes when no pattern is given.
const DefaultPattern = "**/*.js"

// Summary reports what BuildDir did.
type Summary struct {
	// Built lists the files written.
	Built []string
	// Unchanged lists matching files whose output was already up to date.
	Unchanged []string
	// Skipped lists files that did not match the pattern.
	Skipped []string
}

// Builder reads sources from a filesystem, prepends a header and writes
// the results back through the same filesystem.
type Builder struct {
	fs        filesystem.Provider
	prepender *Prepender
	logger    monkeyscript.Logger
	checksum  checksum.Calculator
	replace   bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithReplace strips a header already present in a source before the new
// one is prepended, so rebuilding does not stack headers.
func WithReplace(replace bool) BuilderOption {
	return func(b *Builder) {
		b.replace = replace
	}
}

// NewBuilder creates a Builder. A nil logger discards all output.
func NewBuilder(fs filesystem.Provider, prepender *Prepender, logger monkeyscript.Logger, opts ...BuilderOption) *Builder {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	b := &Builder{
		fs:        fs,
		prepender: prepender,
		logger:    logger,
		checksum:  checksum.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildFile writes src with the header prepended to out. An out file that
// already holds exactly that content is left untouched.
// Write failures match monkeyscript.ErrOutputFailed.
func (b *Builder) BuildFile(src, out string) error {
	_, err := b.buildFile(src, out)
	return err
}

// buildFile reports whether out was written.
func (b *Builder) buildFile(src, out string) (bool, error) {
	content, err := b.fs.ReadFile(src)
	if err != nil {
		return false, fmt.Errorf("failed to read source %s: %w", src, err)
	}
	if b.replace {
		content = metadata.Strip(content)
	}

	result, err := b.prepender.Apply(&File{Path: src, Contents: content})
	if err != nil {
		return false, fmt.Errorf("failed to build %s: %w", src, err)
	}

	sum := b.checksum.Sum(result.Contents)
	if existing, err := b.fs.ReadFile(out); err == nil && b.checksum.Sum(existing) == sum {
		b.logger.Verbose("Unchanged %s (sha256 %s)", out, checksum.Short(sum))
		return false, nil
	}

	if err := b.fs.WriteFile(out, result.Contents); err != nil {
		return false, fmt.Errorf("%w: failed to write %s: %v", monkeyscript.ErrOutputFailed, out, err)
	}
	b.logger.Verbose("Built %s -> %s (sha256 %s)", src, out, checksum.Short(sum))
	return true, nil
}

// BuildDir builds every file under srcDir whose slash separated relative
// path matches pattern, mirroring the tree into outDir. An empty pattern
// means DefaultPattern. When outDir lies inside srcDir its contents are
// never treated as sources.
func (b *Builder) BuildDir(srcDir, outDir, pattern string) (*Summary, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: invalid pattern %q", monkeyscript.ErrUsage, pattern)
	}

	dir, err := b.fs.Open(srcDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open source directory: %w", err)
	}

	inPlace, nested := outputPlacement(srcDir, outDir)
	if inPlace && !b.replace {
		b.logger.Warn("Building in place without --replace; existing headers will be stacked")
	}

	summary := &Summary{}
	var sources []string
	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if file.Info().IsDir() {
			return nil
		}
		rel := file.RelativePath()
		if nested != "" && (rel == nested || strings.HasPrefix(rel, nested+"/")) {
			return nil
		}
		if ok, _ := doublestar.Match(pattern, rel); !ok {
			summary.Skipped = append(summary.Skipped, rel)
			return nil
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", srcDir, err)
	}

	b.logger.Verbose("Matched %d file(s) with %q, skipped %d", len(sources), pattern, len(summary.Skipped))

	for _, rel := range sources {
		src := filepath.Join(srcDir, filepath.FromSlash(rel))
		out := filepath.Join(outDir, filepath.FromSlash(rel))
		written, err := b.buildFile(src, out)
		if err != nil {
			return summary, err
		}
		if written {
			summary.Built = append(summary.Built, rel)
		} else {
			summary.Unchanged = append(summary.Unchanged, rel)
		}
	}
	return summary, nil
}

// outputPlacement reports whether outDir equals srcDir, and if outDir is a
// strict subdirectory of srcDir, its slash separated path relative to srcDir.
func outputPlacement(srcDir, outDir string) (inPlace bool, nested string) {
	rel, err := filepath.Rel(filepath.Clean(srcDir), filepath.Clean(outDir))
	if err != nil {
		return false, ""
	}
	rel = filepath.ToSlash(rel)
	switch {
	case rel == ".":
		return true, ""
	case rel == ".." || strings.HasPrefix(rel, "../"):
		return false, ""
	default:
		return false, rel
	}
}
