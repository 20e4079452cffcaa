package ports

/*
LineReader acquires one line of input from the interactive input stream.
This is a driven port, implemented by an adapter over the real stream.
*/
type LineReader interface {
	// ReadLine reads until a line terminator or the end of the stream. It
	// returns io.EOF when the stream is exhausted before any byte is read;
	// a partial final line is returned without error.
	ReadLine() (string, error)
}
