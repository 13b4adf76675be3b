package hyperloglog

import (
	"math"

	"github.com/arashbm/hyperloglog/bias"
)

// biasNeighbors is the number of nearest empirical samples averaged to
// correct the raw estimator's small-range bias.
const biasNeighbors = 6

// rawEstimate computes the uncorrected HyperLogLog estimator over a dense
// representation's registers, alongside the count of registers still at
// zero. This is `m - V` where V is the nonzero-register count the spec's
// raw_estimate returns; linearEstimate's m/(m-non_zero) ratio is exactly
// m/zeros, so callers can pass this value straight through.
func rawEstimate(d *denseRepr, pr *params) (e float64, zeros int) {
	m := float64(len(d.registers))

	var sum float64
	for _, r := range d.registers {
		sum += 1.0 / float64(uint64(1)<<r)
		if r == 0 {
			zeros++
		}
	}

	e = pr.alpha * m * m / sum
	return e, zeros
}

// linearEstimate applies the linear counting cardinality estimator, used
// when the raw estimate falls in the small-range regime registers-at-zero
// would otherwise bias.
func linearEstimate(zeros int, m float64) float64 {
	if zeros == 0 {
		return m * math.Log(m)
	}
	return m * math.Log(m/float64(zeros))
}

// biasCorrect looks up the registered bias table for precision p and
// subtracts the nearest-neighbor-averaged bias from the raw estimate e.
// With no table registered for p, e is returned uncorrected.
func biasCorrect(e float64, p int) float64 {
	table, ok := bias.Lookup(p)
	if !ok || len(table) == 0 {
		return e
	}
	return e - bias.NearestAverage(table, e, biasNeighbors)
}

// estimate runs the full dense cardinality pipeline: raw estimate with bias
// correction in the small-range regime, linear counting whenever any
// register is still at zero, and a final threshold comparison that picks
// linear counting over the (possibly bias-corrected) raw estimate whenever
// linear counting's own result falls below the precision's threshold.
func (d *denseRepr) estimate(pr *params) float64 {
	m := float64(len(d.registers))

	raw, zeros := rawEstimate(d, pr)

	e := raw
	if raw <= 5*m {
		e = biasCorrect(raw, pr.p)
	}

	h := e
	if zeros != 0 {
		h = linearEstimate(zeros, m)
	}

	if h <= pr.threshold {
		return h
	}
	return e
}
