/*
Package builtins implements the fixed registry of shell-internal commands:
cd, help, and exit.
*/
package builtins

import (
	"io"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// entry pairs a builtin's implementation with its one-line description.
type entry struct {
	run         ports.Builtin
	description string
}

// Registry implements the BuiltinRegistry port. The table is built once at
// construction and never mutated afterwards.
type Registry struct {
	out     io.Writer
	errOut  io.Writer
	order   []string
	entries map[string]entry
}

// NewRegistry builds the builtin table. Builtin output goes to out, builtin
// diagnostics to errOut.
func NewRegistry(out, errOut io.Writer) ports.BuiltinRegistry {
	r := &Registry{
		out:     out,
		errOut:  errOut,
		entries: make(map[string]entry),
	}

	r.register("cd", "Change the current working directory.", r.cd)
	r.register("help", "Show the builtin commands.", r.help)
	r.register("exit", "Leave the shell.", r.exit)

	return r
}

func (r *Registry) register(name, description string, run ports.Builtin) {
	r.order = append(r.order, name)
	r.entries[name] = entry{run: run, description: description}
}

// Lookup resolves a builtin by exact, case-sensitive name match.
func (r *Registry) Lookup(name string) (ports.Builtin, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.run, true
}

// Names returns the builtin names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
