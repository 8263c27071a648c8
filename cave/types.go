package cave

import (
	"errors"
	"fmt"
)

// ErrEmptyLabel is returned when a label has zero length.
var ErrEmptyLabel = errors.New("cave: label is empty")

// Reserved labels.
const (
	StartLabel = "start"
	EndLabel   = "end"
)

// Kind is the category of a cave.
type Kind uint8

const (
	// Start is the unique entry cave. It is never re-entered.
	Start Kind = iota + 1
	// End is the unique exit cave. It is never left.
	End
	// Small caves are revisit-limited by the enumeration policy.
	Small
	// Big caves may be revisited without limit.
	Big
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	case Small:
		return "small"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Node is a classified cave label.
//
// The zero Node is not valid; obtain Nodes through Classify.
type Node struct {
	label string
	kind  Kind
}

// Label returns the original text label.
func (n Node) Label() string { return n.label }

// Kind returns the derived category.
func (n Node) Kind() Kind { return n.kind }

// IsStart reports whether n is the start cave.
func (n Node) IsStart() bool { return n.kind == Start }

// IsEnd reports whether n is the end cave.
func (n Node) IsEnd() bool { return n.kind == End }

// IsSmall reports whether n is a small cave.
func (n Node) IsSmall() bool { return n.kind == Small }

// IsBig reports whether n is a big cave.
func (n Node) IsBig() bool { return n.kind == Big }

// String returns the label, so paths print the way they were written.
func (n Node) String() string { return n.label }
