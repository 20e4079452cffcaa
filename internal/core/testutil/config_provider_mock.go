package testutil

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/domain/config"
)

// MockConfigProvider is a mock implementation of ports.ConfigProvider.
type MockConfigProvider struct {
	LoadFunc func() (config.Config, error)
}

// Load calls the mock LoadFunc.
func (m *MockConfigProvider) Load() (config.Config, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return config.Config{}, errors.New("MockConfigProvider.LoadFunc not implemented")
}
