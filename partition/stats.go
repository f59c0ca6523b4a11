package partition

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Balance summarizes how evenly a Set spreads arcs across its partitions.
// Shares are fractions of the total arc count, so a perfectly balanced
// k-partition set has every share equal to 1/k.
type Balance struct {
	// Shares is the per-partition arc fraction, indexed by partition id.
	Shares []float64

	// Mean, StdDev, Min, Max summarize Shares.
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64

	// RemoteFraction is the fraction of all arcs that cross partitions —
	// the communication volume any algorithm on top will pay for.
	RemoteFraction float64
}

// Stats computes the arc-balance summary of s. A released or empty Set
// yields the zero Balance.
// Complexity: O(P).
func Stats(s *Set) Balance {
	count := s.PartitionCount()
	if count == 0 {
		return Balance{}
	}

	shares := make([]float64, count)
	var total, remote float64
	for pid := 0; pid < count; pid++ {
		p := s.Partition(pid)
		shares[pid] = float64(p.EdgeCount)
		total += float64(p.EdgeCount)
		remote += float64(p.RemoteEdgeCount)
	}
	if total == 0 {
		return Balance{Shares: shares}
	}
	floats.Scale(1/total, shares)

	sd := 0.0 // sample stddev is undefined for a single partition
	if count > 1 {
		sd = stat.StdDev(shares, nil)
	}

	return Balance{
		Shares:         shares,
		Mean:           stat.Mean(shares, nil),
		StdDev:         sd,
		Min:            floats.Min(shares),
		Max:            floats.Max(shares),
		RemoteFraction: remote / total,
	}
}
