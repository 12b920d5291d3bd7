package internal

import (
	"os"
	"strings"
)

// SourceCode stores the content of a circuit file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewSourceCode(content), nil
}

// NewSourceCode splits content into lines. A trailing newline does not
// start an extra line.
func NewSourceCode(content []byte) *SourceCode {
	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return &SourceCode{}
	}
	return &SourceCode{Lines: strings.Split(text, "\n")}
}
