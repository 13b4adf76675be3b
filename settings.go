package hyperloglog

import (
	"sync"

	"github.com/pkg/errors"
)

// minimum and maximum values for the dense and sparse precision parameters,
// matching the range the bias table registry supports.
const (
	minPrecision       = 4
	maxPrecision       = 18
	maxSparsePrecision = 58
)

// thresholdTable is the sparse-to-HLL crossover cardinality, indexed by
// p-minPrecision. Below the threshold, linear counting is preferred over
// the bias-corrected raw estimate.
var thresholdTable = [...]float64{
	10, 20, 40, 80, 220, 400, 900, 1800, 3100,
	6500, 11500, 20000, 50000, 120000, 350000,
}

// params holds the precomputed, parameter-derived constants shared by every
// sketch built with a given (p, sp) pair. It is immutable once built and
// cached process-wide so repeated calls to New with the same parameters
// don't repeat the derivation.
type params struct {
	p, sp int

	sparseListMax int
	tempListMax   int

	alpha     float64
	threshold float64
}

var (
	paramsCacheLock sync.RWMutex
	paramsCache     = map[[2]int]*params{}
)

// newParams validates p and sp and returns the cached params for that pair,
// computing and installing it on first use.
func newParams(p, sp int) (*params, error) {
	if p < minPrecision || p > maxPrecision {
		return nil, errors.Wrapf(ErrUnsupportedParameters,
			"dense precision must be in [%d,%d], got %d", minPrecision, maxPrecision, p)
	}
	if sp <= p || sp > maxSparsePrecision {
		return nil, errors.Wrapf(ErrUnsupportedParameters,
			"sparse precision must be in (%d,%d], got %d", p, maxSparsePrecision, sp)
	}

	key := [2]int{p, sp}

	paramsCacheLock.RLock()
	cached := paramsCache[key]
	paramsCacheLock.RUnlock()

	if cached != nil {
		return cached, nil
	}

	m := 1 << uint(p)
	sparseListMax := m / 8

	pr := &params{
		p:             p,
		sp:            sp,
		sparseListMax: sparseListMax,
		tempListMax:   sparseListMax / 10,
		alpha:         alpha(p),
		threshold:     thresholdTable[p-minPrecision],
	}

	// install the params. if another equal pair was installed between our
	// critical sections, the result is idempotent.
	paramsCacheLock.Lock()
	paramsCache[key] = pr
	paramsCacheLock.Unlock()

	return pr, nil
}

// alpha computes the bias constant used by the raw HyperLogLog estimator,
// per the low-precision special cases from the original paper.
func alpha(p int) float64 {
	m := float64(int(1) << uint(p))

	switch p {
	case 4:
		return 0.673
	case 5:
		return 0.697
	case 6:
		return 0.709
	default:
		return 0.7213 / (1.0 + 1.079/m)
	}
}
