/*
Package execution dispatches parsed commands to builtins, alias expansions,
or external launches.
*/
package execution

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/loop"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

type service struct {
	builtins  ports.BuiltinRegistry
	launcher  ports.ProcessLauncher
	tokenizer ports.Tokenizer
	aliases   map[string]string
	errOut    io.Writer
}

// NewService creates the dispatch service. aliases may be empty.
// It panics if any other dependency is nil.
func NewService(
	builtins ports.BuiltinRegistry,
	launcher ports.ProcessLauncher,
	tokenizer ports.Tokenizer,
	aliases map[string]string,
	errOut io.Writer,
) ports.ExecutionService {
	if builtins == nil {
		panic("builtins cannot be nil")
	}
	if launcher == nil {
		panic("launcher cannot be nil")
	}
	if tokenizer == nil {
		panic("tokenizer cannot be nil")
	}
	if errOut == nil {
		panic("errOut cannot be nil")
	}
	return &service{
		builtins:  builtins,
		launcher:  launcher,
		tokenizer: tokenizer,
		aliases:   aliases,
		errOut:    errOut,
	}
}

// Execute dispatches one command. An empty sequence is a no-op. Builtins
// shadow aliases, and an alias expands exactly once. Launch failures are
// reported here and never stop the loop.
func (s *service) Execute(cmd command.Command) loop.Signal {
	if cmd.IsEmpty() {
		return loop.Continue
	}

	if run, ok := s.builtins.Lookup(cmd.Name()); ok {
		return run(cmd.Tokens)
	}

	tokens := cmd.Tokens
	if expansion, ok := s.expand(cmd); ok {
		if len(expansion) == 0 {
			return loop.Continue
		}
		tokens = expansion

		// The expansion may resolve to a builtin under another name.
		if run, ok := s.builtins.Lookup(tokens[0]); ok {
			return run(tokens)
		}
	}

	if err := s.launcher.Launch(tokens); err != nil {
		fmt.Fprintf(s.errOut, "minish: %v\n", err)
	}
	return loop.Continue
}

// expand substitutes a configured alias for the command name, appending the
// original arguments. The substituted command is not expanded again.
func (s *service) expand(cmd command.Command) ([]string, bool) {
	target, ok := s.aliases[cmd.Name()]
	if !ok {
		return nil, false
	}
	return append(s.tokenizer.Split(target), cmd.Args()...), true
}
