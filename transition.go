package hyperloglog

import "math/bits"

// toDense folds a sparse representation at sparse precision sp into a fresh
// dense representation at precision p (p < sp), reconstructing exactly the
// rank direct-dense insertion of the same hashes would have produced.
func toDense(s *sparseRepr, pr *params) *denseRepr {
	d := newDenseRepr(pr)

	shift := uint(pr.sp - pr.p)
	betweenMask := uint64(1)<<shift - 1

	for _, word := range s.mergedView() {
		indexSp, rankSp := decode(word)

		denseIndex := indexSp >> shift
		between := indexSp & betweenMask

		var rank uint8
		if between == 0 {
			// the leading zeros observed at sparse precision begin at bit
			// position sp, so they extend the dense-precision rank by
			// exactly the bits dense precision doesn't see.
			rank = rankSp + uint8(shift)
		} else {
			// the first 1 bit sits inside the bits between the dense index
			// and the sparse-precision rank scan.
			rank = uint8(bits.LeadingZeros64(between<<(64-shift))) + 1
		}

		d.setIfGreater(denseIndex, rank)
	}

	return d
}
