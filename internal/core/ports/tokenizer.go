package ports

// Tokenizer splits an input line into delimiter-separated tokens.
type Tokenizer interface {
	// Split returns the line's tokens in left-to-right order. An empty or
	// all-delimiter line yields a zero-length sequence.
	Split(line string) []string
}
