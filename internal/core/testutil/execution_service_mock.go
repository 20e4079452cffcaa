package testutil

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/loop"
)

// MockExecutionService is a mock implementation of ports.ExecutionService.
type MockExecutionService struct {
	ExecuteFunc func(cmd command.Command) loop.Signal
}

// Execute calls the mock ExecuteFunc.
func (m *MockExecutionService) Execute(cmd command.Command) loop.Signal {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(cmd)
	}
	return loop.Continue
}
