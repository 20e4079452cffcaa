/*
Package launcher spawns external programs with the shell's standard streams
and blocks until they reach a terminal state.
*/
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// Launcher implements the ProcessLauncher port using os/exec. The child
// inherits the configured streams directly; nothing is captured or
// redirected.
type Launcher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a Launcher whose children inherit the given streams.
func New(stdin io.Reader, stdout, stderr io.Writer) ports.ProcessLauncher {
	return &Launcher{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Launch resolves tokens[0] through the system search path and runs it with
// the full token sequence as its argument vector, the typed name repeated as
// argv[0] by convention. The wait rides through stop/continue transitions
// and discards the child's exit status: a command that ran and failed is not
// a launch error.
func (l *Launcher) Launch(tokens []string) error {
	name := tokens[0]

	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s: command not found", name)
	}

	cmd := exec.Command(path)
	cmd.Args = tokens
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The child reached a terminal state; its status is discarded.
			return nil
		}
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	return nil
}
