/*
Package command defines the core domain entity for a parsed input line.
*/
package command

/*
Command is the ordered token sequence produced from one input line. Token 0
is the command name; the remaining tokens are its arguments. This is a core
domain entity.
*/
type Command struct {
	Tokens []string
}

// New wraps a token sequence produced by the tokenizer.
func New(tokens []string) Command {
	return Command{Tokens: tokens}
}

// IsEmpty reports whether the line held no tokens at all. Dispatching an
// empty command is a no-op.
func (c Command) IsEmpty() bool {
	return len(c.Tokens) == 0
}

// Name returns the command name, or "" for an empty command.
func (c Command) Name() string {
	if c.IsEmpty() {
		return ""
	}
	return c.Tokens[0]
}

// Args returns the tokens following the command name.
func (c Command) Args() []string {
	if len(c.Tokens) < 2 {
		return nil
	}
	return c.Tokens[1:]
}
