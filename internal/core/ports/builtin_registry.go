package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/loop"

// Builtin is one shell-internal operation. It receives the full token
// sequence, command name included at index 0, and reports whether the loop
// should keep running.
type Builtin func(tokens []string) loop.Signal

/*
BuiltinRegistry is the fixed table of shell builtins, consulted before any
external launch. The table is established once at startup and never mutated.
*/
type BuiltinRegistry interface {
	// Lookup resolves a builtin by exact, case-sensitive name match.
	Lookup(name string) (Builtin, bool)

	// Names returns the builtin names in their registration order.
	Names() []string
}
