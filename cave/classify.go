package cave

import (
	"unicode"
	"unicode/utf8"
)

// Classify derives the Node for label.
// Reserved words are matched before the casing rule, so "start" is Start
// while "Start" is Big.
// Returns ErrEmptyLabel if label == "".
func Classify(label string) (Node, error) {
	if label == "" {
		return Node{}, ErrEmptyLabel
	}

	return Node{label: label, kind: kindOf(label)}, nil
}

// MustClassify is like Classify but panics on error.
// Intended for literals and tests.
func MustClassify(label string) Node {
	n, err := Classify(label)
	if err != nil {
		panic(err)
	}

	return n
}

// kindOf assumes label is non-empty.
func kindOf(label string) Kind {
	switch label {
	case StartLabel:
		return Start
	case EndLabel:
		return End
	}
	first, _ := utf8.DecodeRuneInString(label)
	if unicode.IsUpper(first) {
		return Big
	}

	return Small
}
