package builtins

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/minish/internal/core/domain/loop"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

// cd changes the process's working directory. A missing argument or a
// failing chdir is reported to errOut; neither stops the loop.
func (r *Registry) cd(tokens []string) loop.Signal {
	if len(tokens) < 2 {
		fmt.Fprintln(r.errOut, `minish: expected argument to "cd"`)
		return loop.Continue
	}

	target := tokens[1]
	if err := os.Chdir(target); err != nil {
		switch {
		case os.IsNotExist(err):
			fmt.Fprintf(r.errOut, "minish: cd: %s: No such file or directory\n", target)
		case os.IsPermission(err):
			fmt.Fprintf(r.errOut, "minish: cd: %s: Permission denied\n", target)
		default:
			fmt.Fprintf(r.errOut, "minish: cd: %v\n", err)
		}
	}

	return loop.Continue
}

// help prints the usage banner and the builtin table. Arguments are ignored.
func (r *Registry) help(_ []string) loop.Signal {
	fmt.Fprintln(r.out, ui.HeaderColor("minish - a minimal interactive shell"))
	fmt.Fprintln(r.out, "Type a program name and arguments, then press enter.")
	fmt.Fprintln(r.out, "The following commands are built in:")

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Command", "Description"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range r.order {
		table.Append([]string{name, r.entries[name].description})
	}
	table.Render()

	fmt.Fprintln(r.out, "Anything else is run as an external program.")
	return loop.Continue
}

// exit ignores its arguments and stops the loop.
func (r *Registry) exit(_ []string) loop.Signal {
	return loop.Terminate
}
