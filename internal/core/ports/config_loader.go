package ports

import "go.trai.ch/lambdazip/internal/core/domain"

// ConfigLoader defines the interface for loading packager settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path. A missing file yields domain.DefaultSettings.
	Load(path string) (domain.Settings, error)
}
