// Package bias implements the process-wide bias table registry: a
// read-only collection of empirical (raw estimate, bias) sample points, one
// table per supported dense precision, used to correct the small-range bias
// of the raw HyperLogLog estimator.
//
// Generating empirically-correct tables requires running the estimator
// against known cardinalities at scale, which is a benchmarking concern
// kept out of this package's scope; Register lets a host install tables it
// trusts, and the defaults.go file installs a built-in set at init time.
package bias

import "sort"

// Point is one empirical (raw estimate, bias) sample.
type Point struct {
	Raw, Bias float64
}

// Table is a bias correction table for one dense precision, sorted
// ascending by Raw.
type Table []Point

var registry = map[int]Table{}

// Register installs the bias table for dense precision p, overwriting
// anything previously registered for that precision. Intended to be called
// during package initialization, either this package's own defaults or a
// host application's empirically-derived tables — the registry is
// process-wide and read-only once the program starts serving traffic.
func Register(p int, table Table) {
	registry[p] = table
}

// Lookup returns the bias table registered for precision p, if any.
func Lookup(p int) (Table, bool) {
	t, ok := registry[p]
	return t, ok
}

// NearestAverage returns the inverse-distance-weighted average bias of the
// k points in table nearest to raw. table must be sorted ascending by Raw.
// If any candidate's Raw is exactly raw, its Bias is returned directly
// (the 1/distance weight would otherwise diverge).
func NearestAverage(table Table, raw float64, k int) float64 {
	if len(table) == 0 {
		return 0
	}

	insertAt := sort.Search(len(table), func(i int) bool { return table[i].Raw >= raw })

	lo, hi := insertAt-k, insertAt+k
	if lo < 0 {
		lo = 0
	}
	if hi > len(table) {
		hi = len(table)
	}

	candidates := table[lo:hi]
	type scored struct {
		Point
		dist float64
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{Point: c, dist: absFloat(c.Raw - raw)}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })

	if len(ranked) > k {
		ranked = ranked[:k]
	}

	var weightedSum, weightSum float64
	for _, r := range ranked {
		if r.dist == 0 {
			return r.Bias
		}
		w := 1 / r.dist
		weightedSum += r.Bias * w
		weightSum += w
	}

	if weightSum == 0 {
		return ranked[0].Bias
	}
	return weightedSum / weightSum
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
