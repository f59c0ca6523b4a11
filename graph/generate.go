package graph

import (
	"fmt"
	"math/rand"
)

// Weight domain for generated weighted graphs.
const (
	genWeightMin = 1.0
	genWeightMax = 10.0
)

// Random samples an Erdős–Rényi-like graph over n vertices: each admissible
// pair becomes an edge independently with probability p. Undirected graphs
// draw unordered pairs {i,j}, i<j; directed graphs draw ordered pairs (i,j),
// i≠j. Weighted graphs draw weights uniformly from [1, 10).
//
// Trial order is fixed (i ascending, then j ascending), so a given
// (n, p, seed, options) tuple always yields the same graph.
//
// Returns ErrNoVertices for n < 1 and ErrInvalidProbability for p outside
// [0, 1].
// Complexity: O(n²) trials, O(V + E) memory.
func Random(n int, p float64, seed int64, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrNoVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Random: p=%.6f: %w", p, ErrInvalidProbability)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := rand.New(rand.NewSource(seed))
	weight := func() Weight {
		if !cfg.weighted {
			return 0
		}
		return Weight(genWeightMin + rng.Float64()*(genWeightMax-genWeightMin))
	}

	var list []Edge
	for i := 0; i < n; i++ {
		jStart := i + 1 // undirected: unordered pairs only
		if cfg.directed {
			jStart = 0
		}
		for j := jStart; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				list = append(list, Edge{From: VID(i), To: VID(j), Weight: weight()})
			}
		}
	}

	return FromEdges(n, list, opts...)
}
