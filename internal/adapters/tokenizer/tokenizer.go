/*
Package tokenizer splits input lines into delimiter-separated tokens. There
is no quoting or escaping: a token containing a delimiter cannot be written.
*/
package tokenizer

import (
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// delimiters separate tokens: space, tab, carriage return, newline, bell.
const delimiters = " \t\r\n\a"

// Tokenizer implements the Tokenizer port with a fixed delimiter set.
type Tokenizer struct{}

// New creates a Tokenizer.
func New() ports.Tokenizer {
	return &Tokenizer{}
}

// Split returns the line's tokens in left-to-right order. An empty or
// all-delimiter line yields a zero-length sequence.
func (t *Tokenizer) Split(line string) []string {
	return strings.FieldsFunc(line, isDelimiter)
}

func isDelimiter(r rune) bool {
	return strings.ContainsRune(delimiters, r)
}
