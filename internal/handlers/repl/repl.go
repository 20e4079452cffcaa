/*
Package repl runs the interactive dispatch loop: prompt, read, tokenize,
dispatch, repeat until the exit builtin or end of input.
*/
package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/loop"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
)

// Handler drives the read-eval loop over the injected ports.
type Handler struct {
	reader    ports.LineReader
	tokenizer ports.Tokenizer
	executor  ports.ExecutionService
	out       io.Writer
	prompt    string
}

// New creates the loop handler. The prompt is written to out, with no
// trailing newline, before every read.
func New(
	reader ports.LineReader,
	tokenizer ports.Tokenizer,
	executor ports.ExecutionService,
	out io.Writer,
	prompt string,
) *Handler {
	return &Handler{
		reader:    reader,
		tokenizer: tokenizer,
		executor:  executor,
		out:       out,
		prompt:    prompt,
	}
}

// Run iterates until the executor signals termination or input ends. End of
// input is a clean stop, equivalent to the exit builtin. The line and token
// sequence of each iteration are locals released when the iteration ends.
func (h *Handler) Run() error {
	for {
		fmt.Fprint(h.out, ui.PromptColor(h.prompt))

		line, err := h.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		tokens := h.tokenizer.Split(line)
		if h.executor.Execute(command.New(tokens)) == loop.Terminate {
			return nil
		}
	}
}
