package corpus

import (
	"io"
	"strings"
)

// Words is the chain capability set for word payloads.
type Words struct{}

func (Words) Print(w io.Writer, word string) error {
	if _, err := io.WriteString(w, word); err != nil {
		return err
	}
	if !IsLast(word) {
		_, err := io.WriteString(w, " ")
		return err
	}
	return nil
}

func (Words) Compare(a, b string) int {
	return strings.Compare(a, b)
}

func (Words) Copy(word string) (string, error) {
	return strings.Clone(word), nil
}

func (Words) IsTerminal(word string) bool {
	return IsLast(word)
}

// IsLast reports whether word ends a sentence.
func IsLast(word string) bool {
	return strings.HasSuffix(word, ".")
}

// Tokenize splits a line into words on spaces, tabs and line breaks.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
