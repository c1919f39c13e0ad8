package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/monkeyscript/internal/files/filesystem"
	"github.com/vvka-141/monkeyscript/internal/metadata"
	"github.com/vvka-141/monkeyscript/internal/pipeline"
	"github.com/vvka-141/monkeyscript/internal/tui"
)

var buildCmd = &cobra.Command{
	Use:   "build <source>",
	Short: "Prepend the metadata header to built scripts",
	Long: `Prepend the compiled header to a script or to every matching script
in a directory.

A single file without --output is streamed to stdout. A directory is
mirrored into --output (default from .monkeyscript.yaml, else "dist"),
processing files that match --pattern.

Use --replace when rebuilding files that already carry a header, so the
old block is swapped instead of stacked.

Examples:
  # Stream one script with its header to stdout
  monkeyscript build src/main.js > dist/main.user.js

  # Build one script into a file
  monkeyscript build src/main.js -o dist/main.user.js

  # Build every .user.js file under src/ into dist/
  monkeyscript build src -o dist --pattern "**/*.user.js"

  # Refresh headers in place
  monkeyscript build dist -o dist --replace`,
	Args: RequireSource,
	RunE: runBuild,
}

// DefaultBuildOutput is the output directory used for directory builds when
// neither --output nor the project file names one.
const DefaultBuildOutput = "dist"

var (
	buildOutput  string
	buildPattern string
	buildReplace bool
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output file or directory")
	buildCmd.Flags().StringVar(&buildPattern, "pattern", "", fmt.Sprintf("Files to process in a directory build (default %q)", pipeline.DefaultPattern))
	buildCmd.Flags().BoolVar(&buildReplace, "replace", false, "Replace a header already present in the source")
}

func runBuild(cmd *cobra.Command, args []string) error {
	source := args[0]

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	result, err := s.compile()
	if err != nil {
		return err
	}

	output, pattern, replace := buildOutput, buildPattern, buildReplace
	if s.project != nil {
		if output == "" {
			output = s.project.Output
		}
		if pattern == "" {
			pattern = s.project.Pattern
		}
		if !cmd.Flags().Changed("replace") {
			replace = s.project.Replace
		}
	}

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("failed to access source: %w", err)
	}

	prepender := pipeline.NewPrepender(result.Header)
	fs := filesystem.NewOSFileSystem()
	builder := pipeline.NewBuilder(fs, prepender, s.logger, pipeline.WithReplace(replace))

	if info.IsDir() {
		if output == "" {
			output = DefaultBuildOutput
		}
		summary, err := builder.BuildDir(source, output, pattern)
		if err != nil {
			return err
		}
		s.logger.Info("%s", tui.Success(fmt.Sprintf("Built %d file(s) into %s, %d unchanged", len(summary.Built), output, len(summary.Unchanged))))
		for _, rel := range summary.Built {
			s.logger.Verbose("%s", tui.Bullet(rel))
		}
		return nil
	}

	if output != "" {
		if err := builder.BuildFile(source, output); err != nil {
			return err
		}
		s.logger.Info("%s", tui.Success(fmt.Sprintf("Built %s", output)))
		return nil
	}

	return streamBuild(cmd.OutOrStdout(), prepender, source, replace)
}

// streamBuild writes source with its header to w without buffering the
// whole file, except when an existing header has to be stripped first.
func streamBuild(w io.Writer, prepender *pipeline.Prepender, source string, replace bool) error {
	file := &pipeline.File{Path: source}

	if replace {
		content, err := os.ReadFile(source)
		if err != nil {
			return fmt.Errorf("failed to read source %s: %w", source, err)
		}
		file.Contents = metadata.Strip(content)
	} else {
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("failed to open source %s: %w", source, err)
		}
		defer f.Close()
		file.Stream = f
	}

	out, err := prepender.Apply(file)
	if err != nil {
		return err
	}
	if out.IsStream() {
		_, err = io.Copy(w, out.Stream)
	} else {
		_, err = w.Write(out.Contents)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
