package testutil

import "github.com/AntonioJCosta/minish/internal/core/ports"

// MockBuiltinRegistry is a mock implementation of ports.BuiltinRegistry.
type MockBuiltinRegistry struct {
	LookupFunc func(name string) (ports.Builtin, bool)
	NamesFunc  func() []string
}

// Lookup calls the mock LookupFunc.
func (m *MockBuiltinRegistry) Lookup(name string) (ports.Builtin, bool) {
	if m.LookupFunc != nil {
		return m.LookupFunc(name)
	}
	return nil, false
}

// Names calls the mock NamesFunc.
func (m *MockBuiltinRegistry) Names() []string {
	if m.NamesFunc != nil {
		return m.NamesFunc()
	}
	return nil
}
