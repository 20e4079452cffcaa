package ports

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/loop"
)

// ExecutionService dispatches one parsed command to a builtin, an alias
// expansion, or an external launch.
type ExecutionService interface {
	// Execute runs the command and reports whether the loop should keep
	// running. Recoverable failures are reported at the point of occurrence
	// and still yield loop.Continue.
	Execute(cmd command.Command) loop.Signal
}
