package hyperloglog

import "github.com/arashbm/hyperloglog/hash"

// mode records which of the two representations a Sketch currently holds.
type mode int

const (
	modeSparse mode = iota
	modeDense
)

// Sketch is a probabilistic set of hashed elements of type T. It supports
// Insert and Merge in addition to estimating cardinality, starting out in
// the sparse representation and promoting itself to dense once the sparse
// list grows past the point where it's more compact to just keep a byte per
// register.
//
// A Sketch is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
type Sketch[T any] struct {
	hasher hash.Hasher[T]
	seed   uint64
	pr     *params

	mode   mode
	sparse *sparseRepr
	dense  *denseRepr
}

// New creates a Sketch at dense precision p and sparse precision sp, using
// hasher to turn inserted items into hashes mixed with seed. If
// createDense is true, the sketch starts directly in the dense
// representation rather than sparse, matching the reference
// implementation's constructor flag for callers who know in advance that
// cardinality will exceed the sparse crossover.
func New[T any](p, sp int, createDense bool, seed uint64, hasher hash.Hasher[T]) (*Sketch[T], error) {
	pr, err := newParams(p, sp)
	if err != nil {
		return nil, err
	}

	s := &Sketch[T]{
		hasher: hasher,
		seed:   seed,
		pr:     pr,
	}

	if createDense {
		s.mode = modeDense
		s.dense = newDenseRepr(pr)
	} else {
		s.mode = modeSparse
		s.sparse = newSparseRepr()
	}

	return s, nil
}

// NewDefault creates a Sketch using the default Murmur3 hasher and seed,
// the shape most callers reach for.
func NewDefault[T any](p, sp int) (*Sketch[T], error) {
	return New[T](p, sp, false, hash.DefaultSeed, hash.Murmur3[T]{})
}

// Insert hashes v and folds it into the sketch, promoting from sparse to
// dense if the insert pushes the sparse list over capacity.
func (s *Sketch[T]) Insert(v T) {
	h := s.hasher.Hash(v, s.seed)

	switch s.mode {
	case modeDense:
		index, rank := extract(h, s.pr.p)
		s.dense.setIfGreater(index, rank)
	case modeSparse:
		index, rank := extract(h, s.pr.sp)
		s.sparse.insert(encode(index, rank), s.pr)
		// the sorted list only grows when insert folds the temp list, which
		// leaves it empty; checking capacity otherwise would fold every insert.
		if len(s.sparse.temp) == 0 && s.sparse.overCapacity(s.pr) {
			s.promote()
		}
	}
}

// promote converts the sketch in place from sparse to dense.
func (s *Sketch[T]) promote() {
	s.dense = toDense(s.sparse, s.pr)
	s.sparse = nil
	s.mode = modeDense
}

// Estimate returns the current cardinality estimate. In sparse mode this is
// a read-only linear-counting estimate over the distinct index_sp count, at
// the sparse precision sp; it does not fold the sketch to dense.
func (s *Sketch[T]) Estimate() float64 {
	switch s.mode {
	case modeDense:
		return s.dense.estimate(s.pr)
	default:
		v := uint64(len(s.sparse.mergedView()))
		mInt := uint64(1) << uint(s.pr.sp)
		return linearEstimate(int(mInt-v), float64(mInt))
	}
}

// MeasureError reports raw_estimate - reference for a dense sketch. It
// fails with ErrWrongRepresentation when the sketch is still sparse, since
// the raw estimator is only defined over the dense register array.
func (s *Sketch[T]) MeasureError(reference uint64) (float64, error) {
	if s.mode != modeDense {
		return 0, ErrWrongRepresentation
	}
	raw, _ := rawEstimate(s.dense, s.pr)
	return raw - float64(reference), nil
}

// IsSparse reports whether the sketch is still in the sparse
// representation.
func (s *Sketch[T]) IsSparse() bool {
	return s.mode == modeSparse
}

// DenseView returns a snapshot of the dense register array. For a sparse
// sketch it returns the registers of an equivalent dense conversion and
// leaves the sketch itself sparse. The returned slice is a copy and safe for
// the caller to retain or mutate.
func (s *Sketch[T]) DenseView() []byte {
	var d *denseRepr
	if s.mode == modeDense {
		d = s.dense
	} else {
		d = toDense(s.sparse, s.pr)
	}
	view := make([]byte, len(d.registers))
	copy(view, d.registers)
	return view
}

// Clone returns a deep copy of the sketch, independent of the receiver.
func (s *Sketch[T]) Clone() *Sketch[T] {
	clone := &Sketch[T]{
		hasher: s.hasher,
		seed:   s.seed,
		pr:     s.pr,
		mode:   s.mode,
	}
	if s.mode == modeSparse {
		clone.sparse = s.sparse.clone()
	} else {
		clone.dense = s.dense.clone()
	}
	return clone
}
