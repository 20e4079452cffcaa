/*
Package linereader reads raw lines from the interactive input stream. The
line buffer grows as needed, so there is no upper bound on line length.
*/
package linereader

import (
	"bufio"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// initialBufferSize is the starting capacity of each line buffer; append
// grows it geometrically for longer lines.
const initialBufferSize = 1024

// Reader implements the LineReader port on top of any io.Reader.
type Reader struct {
	in *bufio.Reader
}

// New creates a Reader for the given input stream.
func New(in io.Reader) ports.LineReader {
	return &Reader{in: bufio.NewReader(in)}
}

// ReadLine reads bytes until '\n' or the end of the stream. End of input
// before any byte is read returns io.EOF; a partial final line is returned
// without error. A '\r' before the terminator is dropped.
func (r *Reader) ReadLine() (string, error) {
	buffer := make([]byte, 0, initialBufferSize)

	for {
		b, err := r.in.ReadByte()
		if err != nil {
			if err == io.EOF && len(buffer) > 0 {
				return string(trimCarriageReturn(buffer)), nil
			}
			return "", err
		}

		if b == '\n' {
			return string(trimCarriageReturn(buffer)), nil
		}

		buffer = append(buffer, b)
	}
}

func trimCarriageReturn(buffer []byte) []byte {
	if n := len(buffer); n > 0 && buffer[n-1] == '\r' {
		return buffer[:n-1]
	}
	return buffer
}
