package testutil

import "errors"

// MockProcessLauncher is a mock implementation of ports.ProcessLauncher.
type MockProcessLauncher struct {
	LaunchFunc func(tokens []string) error
}

// Launch calls the mock LaunchFunc.
func (m *MockProcessLauncher) Launch(tokens []string) error {
	if m.LaunchFunc != nil {
		return m.LaunchFunc(tokens)
	}
	return errors.New("MockProcessLauncher.LaunchFunc not implemented")
}
