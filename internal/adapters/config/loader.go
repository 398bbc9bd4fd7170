// Package config provides the configuration loader for clustertap.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/clustertap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load returns the configuration. An explicit path must exist; otherwise the
// file is searched for from cwd upwards and defaults apply when none is found.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	if path == "" {
		found, ok := findConfiguration(cwd)
		if !ok {
			l.Logger.Debug("no configuration file found, using defaults", "cwd", cwd)
			return domain.DefaultConfig(), nil
		}
		path = found
	}

	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg, err := file.apply(domain.DefaultConfig())
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if err := l.validate.Struct(cfg); err != nil {
		return nil, zerr.With(validationError(err), "path", path)
	}

	l.Logger.Debug("configuration loaded", "path", path)
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from the operator or discovery
	content, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(content, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// apply overlays the fields present in the file onto cfg.
//
//nolint:cyclop // flat field mapping
func (f *File) apply(cfg *domain.Config) (*domain.Config, error) {
	if c := f.Cache; c != nil {
		if err := parseDuration("cache.maxAge", c.MaxAge, &cfg.Cache.MaxAge); err != nil {
			return nil, err
		}
		if err := parseDuration("cache.sweepInterval", c.SweepInterval, &cfg.Cache.SweepInterval); err != nil {
			return nil, err
		}
	}

	if c := f.Classifier; c != nil && c.Patterns != nil {
		cfg.Classifier.Patterns = c.Patterns
	}

	if e := f.Extractor; e != nil {
		overrideList(&cfg.Extractor.CollectionFields, e.CollectionFields)
		overrideList(&cfg.Extractor.BodyFields, e.BodyFields)
		overrideList(&cfg.Extractor.RequestFields, e.RequestFields)
		overrideList(&cfg.Extractor.IDKeys, e.IDKeys)
		if e.HistorySize != nil {
			cfg.Extractor.HistorySize = *e.HistorySize
		}
	}

	if s := f.Server; s != nil && s.Addr != "" {
		cfg.Server.Addr = s.Addr
	}

	if s := f.Spool; s != nil {
		cfg.Spool.Dir = s.Dir
	}

	if lg := f.Log; lg != nil {
		if lg.Format != "" {
			cfg.Log.Format = lg.Format
		}
		if lg.Level != "" {
			cfg.Log.Level = lg.Level
		}
	}

	return cfg, nil
}

func parseDuration(key, raw string, target *time.Duration) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "key", key)
	}
	*target = d
	return nil
}

func overrideList(target *[]string, values []string) {
	if values != nil {
		*target = values
	}
}

// validationError reports the first failing field of a validator error.
func validationError(err error) error {
	wrapped := zerr.Wrap(err, domain.ErrConfigInvalid.Error())

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		wrapped = zerr.With(wrapped, "field", fieldErrs[0].Namespace())
		wrapped = zerr.With(wrapped, "rule", fieldErrs[0].Tag())
	}
	return wrapped
}
