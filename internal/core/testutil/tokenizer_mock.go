package testutil

import "strings"

// MockTokenizer is a mock implementation of ports.Tokenizer. When SplitFunc
// is unset it falls back to strings.Fields.
type MockTokenizer struct {
	SplitFunc func(line string) []string
}

// Split calls the mock SplitFunc.
func (m *MockTokenizer) Split(line string) []string {
	if m.SplitFunc != nil {
		return m.SplitFunc(line)
	}
	return strings.Fields(line)
}
