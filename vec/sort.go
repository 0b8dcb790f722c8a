package vec

// Compare is a three-way comparator over raw element bytes: negative when
// a orders before b, zero when equal, positive when a orders after b.
type Compare func(a, b []byte) int

// Sort orders the elements in place with selection sort: O(n^2)
// comparisons, O(n) swaps. Only the "positive" outcome of cmp is consumed
// when tracking the running minimum, so ties order arbitrarily among
// equals. Sorting an empty or single-element vector is a no-op.
func (v *Vector) Sort(cmp Compare) {
	for i := 0; i < v.length-1; i++ {
		min := i
		for j := i + 1; j < v.length; j++ {
			if cmp(v.Elem(min), v.Elem(j)) > 0 {
				min = j
			}
		}
		if min != i {
			v.swap(i, min)
		}
	}
}
