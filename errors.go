package hyperloglog

import "github.com/pkg/errors"

// ErrIncompatibleSeeds is returned by Merge when the receiver and the
// argument were constructed with different seeds. The receiver is left
// unmodified.
var ErrIncompatibleSeeds = errors.New("hyperloglog: cannot merge sketches with different seeds")

// ErrUnsupportedParameters is returned by New when the requested dense or
// sparse precision falls outside the supported range.
var ErrUnsupportedParameters = errors.New("hyperloglog: unsupported precision parameters")

// ErrWrongRepresentation is returned by dense-only operations (MeasureError)
// when called on a sketch still in the sparse representation.
var ErrWrongRepresentation = errors.New("hyperloglog: operation requires a dense sketch")
