package ports

import "go.trai.ch/filedep/internal/core/domain"

// ConfigLoader defines the interface for loading the resolver configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the lockfile root from cwd and returns the layered configuration.
	// Overrides are keyed by the domain.Key* constants and win over every other layer.
	Load(cwd string, overrides map[string]any) (*domain.Config, error)
}
