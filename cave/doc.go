// Package cave classifies cave labels into the four node kinds used by the
// path enumerator: Start, End, Small and Big.
//
// What
//
//   - Classify maps a raw text label to a Node.
//   - A Node is an immutable, comparable value; two Nodes are equal iff their
//     labels are equal, because Kind is always derived from the label.
//   - Kind is a closed enumeration. Code that switches on it is expected to
//     handle all four values.
//
// Rules (checked in this order, case-sensitive)
//
//	"start"                       → Start
//	"end"                         → End
//	first character is upper-case → Big   ("Start", "A", "HN")
//	anything else                 → Small ("b", "kj", "sTART")
//
// Usage
//
//	n, err := cave.Classify("HN")
//	if err != nil {
//		// only ErrEmptyLabel
//	}
//	fmt.Println(n.Kind()) // big
//
// Errors
//
//   - ErrEmptyLabel if the label is the empty string.
package cave
