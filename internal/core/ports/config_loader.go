package ports

import "go.trai.ch/clustertap/internal/core/domain"

// ConfigLoader defines the interface for loading the static configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration. An explicit path must exist; with an empty
	// path the loader searches upwards from cwd and falls back to defaults.
	Load(cwd, path string) (*domain.Config, error)
}
