/*
Package shellconfig reads the optional minish configuration file from the
user's home directory.
*/
package shellconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/AntonioJCosta/minish/internal/core/domain/config"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const configDir = ".minish"
const configFilename = "config.yaml"

// userFriendlyConfigPath constructs a path string for display to the user.
func userFriendlyConfigPath() string {
	return filepath.Join("~/", configDir, configFilename)
}

// ConfigAccessor provides access to the shell configuration file via the
// file system.
type ConfigAccessor struct {
	configFilePath string
}

// NewConfigAccessor resolves the config file path under the current user's
// home directory.
func NewConfigAccessor() (ports.ConfigProvider, error) {
	usr, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return &ConfigAccessor{
		configFilePath: filepath.Join(usr.HomeDir, configDir, configFilename),
	}, nil
}

// NewConfigAccessorAt creates an accessor for an explicit config file path.
func NewConfigAccessorAt(path string) ports.ConfigProvider {
	return &ConfigAccessor{configFilePath: path}
}

// Load reads and parses the configuration file. A missing or empty file is
// not an error; the defaults are returned instead. Unknown fields are
// rejected.
func (ca *ConfigAccessor) Load() (config.Config, error) {
	cfg := config.Default()

	raw, err := os.ReadFile(ca.configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file means the defaults apply.
			return cfg, nil
		}
		return config.Default(), fmt.Errorf("failed to read config file %s: %w", userFriendlyConfigPath(), err)
	}

	if len(raw) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		// A file holding only comments or "---" decodes to EOF; treat it
		// like an empty file.
		if errors.Is(err, io.EOF) {
			return config.Default(), nil
		}
		return config.Default(), fmt.Errorf("failed to unmarshal config from %s: %w", userFriendlyConfigPath(), err)
	}

	if cfg.Prompt == "" {
		cfg.Prompt = config.DefaultPrompt
	}

	return cfg, nil
}
