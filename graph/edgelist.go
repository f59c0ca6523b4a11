package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseEdgeList reads a whitespace-separated edge list from r and builds a
// Graph. Each non-empty line is "from to" or, for weighted graphs,
// "from to weight"; lines starting with '#' or '%' are comments. The vertex
// count is max(endpoint)+1.
//
// A weight column on an unweighted graph is rejected with ErrBadWeight; a
// missing weight column on a weighted graph defaults the weight to 1.
// Returns ErrNilSource for a nil reader and ErrParse (with the offending
// line number) for malformed lines.
// Complexity: O(E) time, O(V + E) memory.
func ParseEdgeList(r io.Reader, opts ...Option) (*Graph, error) {
	if r == nil {
		return nil, fmt.Errorf("ParseEdgeList: %w", ErrNilSource)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		list    []Edge
		maxID   VID
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("ParseEdgeList: line %d: %d fields: %w", lineNo, len(fields), ErrParse)
		}

		from, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ParseEdgeList: line %d: source %q: %w", lineNo, fields[0], ErrParse)
		}
		to, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ParseEdgeList: line %d: target %q: %w", lineNo, fields[1], ErrParse)
		}

		w := Weight(0)
		if len(fields) == 3 {
			if !cfg.weighted {
				return nil, fmt.Errorf("ParseEdgeList: line %d: %w", lineNo, ErrBadWeight)
			}
			wf, err := strconv.ParseFloat(fields[2], 32)
			if err != nil {
				return nil, fmt.Errorf("ParseEdgeList: line %d: weight %q: %w", lineNo, fields[2], ErrParse)
			}
			w = Weight(wf)
		} else if cfg.weighted {
			w = 1
		}

		e := Edge{From: VID(from), To: VID(to), Weight: w}
		if e.From > maxID {
			maxID = e.From
		}
		if e.To > maxID {
			maxID = e.To
		}
		list = append(list, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ParseEdgeList: read: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("ParseEdgeList: no edges: %w", ErrParse)
	}

	return FromEdges(int(maxID)+1, list, opts...)
}
