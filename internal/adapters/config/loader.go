// Package config provides the configuration loader for carve.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// knownFeatures are the experimental language features the evaluator
// understands. Unknown names in carve.yaml get a warning and are ignored.
var knownFeatures = map[string]bool{
	"roof":         true,
	"text-metrics": true,
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches upward from cwd for carve.yaml and decodes it. When no file
// is found the defaults apply. The CARVEPATH environment variable is
// appended to the library search paths in both cases.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, found := l.findConfiguration(cwd)
	if found {
		file, err := readConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		l.apply(cfg, file, filepath.Dir(configPath))
	}

	for _, dir := range filepath.SplitList(os.Getenv(domain.SearchPathEnv)) {
		if dir != "" {
			cfg.SearchPaths = append(cfg.SearchPaths, dir)
		}
	}

	return cfg, nil
}

// findConfiguration walks from cwd to the filesystem root looking for the
// nearest carve.yaml.
func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", false
}

func (l *Loader) apply(cfg *domain.Config, file *File, baseDir string) {
	for _, dir := range file.Libraries {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		cfg.SearchPaths = append(cfg.SearchPaths, filepath.Clean(dir))
	}

	for _, name := range file.Features {
		if !knownFeatures[name] {
			l.Logger.Warn(fmt.Sprintf("unknown experimental feature %q in %s", name, domain.ConfigFileName))
			continue
		}
		cfg.Features[name] = true
	}
}

func readConfigFile(path string) (*File, error) {
	//nolint:gosec // Path comes from the upward config search, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read configuration"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "path", path)
	}
	return &file, nil
}
