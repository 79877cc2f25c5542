package cumsum

// CumSumInto writes the running sums of 'src' into 'dst', which must have exactly the same length. This allows
// computing into caller owned storage such as a slice of a stack allocated array, returning a 'LengthMismatchError'
// when the lengths differ, in which case 'dst' is not modified.
//
// NOTE: 'dst' and 'src' may be the same slice, however, partially overlapping slices are not supported.
func CumSumInto[S ~[]E, E Addable](dst, src S) error {
	return CumSumIntoFunc(dst, src, add[E])
}

// CumSumIntoFunc is like 'CumSumInto' but combines elements using the given function.
func CumSumIntoFunc[S ~[]E, E any](dst, src S, add func(x, y E) E) error {
	if len(dst) != len(src) {
		return LengthMismatchError{Dst: len(dst), Src: len(src)}
	}

	for i := range src {
		if i == 0 {
			dst[i] = src[i]
			continue
		}

		dst[i] = add(dst[i-1], src[i])
	}

	return nil
}
