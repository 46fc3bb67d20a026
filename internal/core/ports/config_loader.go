package ports

import "go.trai.ch/assemble/internal/core/domain"

// ConfigLoader defines the interface for loading project settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the project around cwd and returns its settings.
	// A project without a config file yields the default settings rooted at cwd.
	Load(cwd string) (*domain.Project, error)

	// DiscoverConfigPath walks up from cwd and returns the nearest config file path.
	// Returns "" and no error when there is none.
	DiscoverConfigPath(cwd string) (string, error)
}
