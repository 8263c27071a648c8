// Package input reads cave edge lists of the form "LABEL-LABEL", one edge per
// line, into core.Edge records.
//
// Surrounding whitespace is trimmed and blank lines are skipped. Labels are
// not validated here: an empty label (e.g. "a-") is passed through so that
// core.Build reports it.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/caves/core"
)

// Delimiter separates the two labels of an edge line.
const Delimiter = "-"

// ErrMalformedLine is returned for a line without exactly one delimiter.
var ErrMalformedLine = errors.New("input: malformed edge line")

// ParseEdges reads every edge line from r.
func ParseEdges(r io.Reader) ([]core.Edge, error) {
	var edges []core.Edge
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	return edges, nil
}

// ParseLine splits a single "LABEL-LABEL" line.
func ParseLine(line string) (core.Edge, error) {
	if strings.Count(line, Delimiter) != 1 {
		return core.Edge{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	from, to, _ := strings.Cut(line, Delimiter)
	return core.Edge{From: strings.TrimSpace(from), To: strings.TrimSpace(to)}, nil
}

// LoadFile opens path and parses its edge lines.
func LoadFile(path string) ([]core.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	edges, err := ParseEdges(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return edges, nil
}

// LoadGraph loads path and builds the graph in one step.
func LoadGraph(path string) (*core.Graph, error) {
	edges, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
