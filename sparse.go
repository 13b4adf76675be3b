package hyperloglog

import "sort"

// sparseRepr is the sparse representation: a sorted list of encoded
// (index_sp, rank_sp) words, with at most one entry per distinct index_sp,
// backed by an unsorted, bounded write buffer that absorbs inserts cheaply
// until it's worth sorting and folding them into the list.
type sparseRepr struct {
	list []uint64 // sorted ascending, unique index_sp
	temp []uint64 // unsorted, may repeat index_sp
}

func newSparseRepr() *sparseRepr {
	return &sparseRepr{}
}

// insert appends an encoded word to the temp list, folding it into the
// sorted list once the temp list reaches capacity.
func (s *sparseRepr) insert(word uint64, pr *params) {
	s.temp = append(s.temp, word)
	if len(s.temp) >= pr.tempListMax {
		s.fold()
	}
}

// fold normalizes the temp list and sort-merges it into the sorted list,
// leaving temp empty.
func (s *sparseRepr) fold() {
	if len(s.temp) == 0 {
		return
	}
	s.list = sortMerge(s.list, normalize(s.temp))
	s.temp = s.temp[:0]
}

// overCapacity folds any pending temp-list entries and reports whether the
// sorted list has grown past the point where the sketch should transition
// to dense.
func (s *sparseRepr) overCapacity(pr *params) bool {
	s.fold()
	return len(s.list) >= pr.sparseListMax
}

// mergedView returns the sorted, deduplicated view of this representation's
// full content (list plus any unfolded temp entries) without mutating
// either. Used by estimate() and by the read-only side of Merge.
func (s *sparseRepr) mergedView() []uint64 {
	if len(s.temp) == 0 {
		return s.list
	}
	return sortMerge(s.list, normalize(s.temp))
}

// clone returns a deep copy.
func (s *sparseRepr) clone() *sparseRepr {
	list := make([]uint64, len(s.list))
	copy(list, s.list)
	temp := make([]uint64, len(s.temp))
	copy(temp, s.temp)
	return &sparseRepr{list: list, temp: temp}
}

// normalize sorts words ascending and keeps only the last entry of each
// distinct index_sp run. Rank occupies the low bits of the encoded word, so
// within a run of equal index_sp the highest-rank entry sorts last; keeping
// it is exactly the "largest rank per index" dedup the sparse list needs.
func normalize(words []uint64) []uint64 {
	sorted := make([]uint64, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := make([]uint64, 0, len(sorted))
	for i, w := range sorted {
		if i+1 < len(sorted) {
			thisIndex, _ := decode(w)
			nextIndex, _ := decode(sorted[i+1])
			if thisIndex == nextIndex {
				continue
			}
		}
		out = append(out, w)
	}
	return out
}

// sortMerge merges two sorted, index-deduplicated lists into a new sorted,
// deduplicated list, keeping the higher rank whenever both lists hold an
// entry for the same index_sp.
func sortMerge(a, b []uint64) []uint64 {
	out := make([]uint64, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ai, _ := decode(a[i])
		bj, _ := decode(b[j])

		switch {
		case ai == bj:
			if a[i] > b[j] {
				out = append(out, a[i])
			} else {
				out = append(out, b[j])
			}
			i++
			j++
		case ai < bj:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
