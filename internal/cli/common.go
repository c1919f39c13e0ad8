package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/monkeyscript/internal/config"
	"github.com/vvka-141/monkeyscript/internal/files/filesystem"
	"github.com/vvka-141/monkeyscript/internal/logging"
	"github.com/vvka-141/monkeyscript/internal/metadata"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

// ConfigEnv names the configuration file when --config is not given.
const ConfigEnv = "MONKEYSCRIPT_CONFIG"

// DefaultConfigFile is looked up in the working directory before package.json.
const DefaultConfigFile = "monkeyscript.json"

// session is what every header-producing command needs: the project
// defaults, the normalized configuration and a logger.
type session struct {
	logger     monkeyscript.Logger
	project    *config.ProjectConfig
	configPath string
	normalized config.Normalized
	basePad    int
}

// loadProjectConfig loads godotenv and the project defaults file.
// Returns nil config if .monkeyscript.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.LoadProject(dir)
	if err != nil {
		if errors.Is(err, config.ErrProjectNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ProjectFileName, err)
	}
	return projectCfg, nil
}

// resolveConfigPath picks the configuration file: flag, environment,
// project file, monkeyscript.json, package.json. Relative project entries
// resolve against dir.
func resolveConfigPath(dir, flagValue string, project *config.ProjectConfig) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(ConfigEnv); env != "" {
		return env, nil
	}
	if project != nil && project.Config != "" {
		if filepath.IsAbs(project.Config) {
			return project.Config, nil
		}
		return filepath.Join(dir, project.Config), nil
	}
	for _, name := range []string{DefaultConfigFile, monkeyscript.PackageManifest} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: pass --config, set %s, or add %s or %s to %s",
		monkeyscript.ErrNoConfig, ConfigEnv, DefaultConfigFile, monkeyscript.PackageManifest, dir)
}

// resolveBasePad returns the --base-pad flag when set, then the project
// default, then monkeyscript.DefaultBasePad.
func resolveBasePad(cmd *cobra.Command, project *config.ProjectConfig) (int, error) {
	pad, err := cmd.Flags().GetInt("base-pad")
	if err != nil {
		return 0, err
	}
	if cmd.Flags().Changed("base-pad") {
		if pad < 0 {
			return 0, fmt.Errorf("%w: --base-pad must not be negative", monkeyscript.ErrUsage)
		}
		return pad, nil
	}
	if project != nil && project.BasePad != nil {
		return *project.BasePad, nil
	}
	return monkeyscript.DefaultBasePad, nil
}

// newSession resolves and normalizes the configuration for cmd.
func newSession(cmd *cobra.Command) (*session, error) {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	project, err := loadProjectConfig(".")
	if err != nil {
		return nil, err
	}

	flagConfig, _ := cmd.Flags().GetString("config")
	path, err := resolveConfigPath(".", flagConfig, project)
	if err != nil {
		return nil, err
	}
	logger.Verbose("Configuration: %s", path)

	src, err := config.Load(filesystem.NewOSFileSystem(), path)
	if err != nil {
		return nil, err
	}
	normalized, err := config.Normalize(src)
	if err != nil {
		return nil, err
	}
	logger.Verbose("Configuration shape: %s", normalized.Shape)

	basePad, err := resolveBasePad(cmd, project)
	if err != nil {
		return nil, err
	}

	return &session{
		logger:     logger,
		project:    project,
		configPath: path,
		normalized: normalized,
		basePad:    basePad,
	}, nil
}

// compiler builds a metadata compiler for the session's configuration.
func (s *session) compiler() *metadata.Compiler {
	return metadata.NewCompiler(s.normalized.Meta, s.normalized.Options,
		metadata.WithBasePad(s.basePad),
		metadata.WithBaseDir(s.normalized.BaseDir),
	)
}

// compile renders the header and forwards warnings to the logger.
func (s *session) compile() (*metadata.Result, error) {
	result, err := s.compiler().Compile()
	if err != nil {
		return nil, err
	}
	reportWarnings(s.logger, result.Warnings)
	return result, nil
}

func reportWarnings(logger monkeyscript.Logger, warnings []metadata.Warning) {
	for _, w := range warnings {
		logger.Warn("%s", w)
	}
}
