package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/config"

// ConfigProvider loads the optional shell configuration, like a
// configuration file in the user's home directory.
type ConfigProvider interface {
	// Load returns the configuration, falling back to defaults when no
	// configuration source exists.
	Load() (config.Config, error)
}
