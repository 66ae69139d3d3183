package ports

import "go.trai.ch/carve/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory. A missing configuration file is not an error; defaults
	// apply.
	Load(cwd string) (*domain.Config, error)
}
