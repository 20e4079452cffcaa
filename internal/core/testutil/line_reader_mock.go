package testutil

import "errors"

// MockLineReader is a mock implementation of ports.LineReader.
type MockLineReader struct {
	ReadLineFunc func() (string, error)
}

// ReadLine calls the mock ReadLineFunc.
func (m *MockLineReader) ReadLine() (string, error) {
	if m.ReadLineFunc != nil {
		return m.ReadLineFunc()
	}
	return "", errors.New("MockLineReader.ReadLineFunc not implemented")
}
