package cumsum

// CumSum returns a new slice containing the running sums of the elements in the provided slice.
//
// NOTE: The provided slice is not modified, and the returned slice doesn't share storage with it.
func CumSum[S ~[]E, E Addable](s S) S {
	return CumSumFunc(s, add[E])
}

// CumSumFunc is like 'CumSum' but combines elements using the given function which is called exactly 'len(s)-1' times
// as 'add(y[i-1], s[i])'.
func CumSumFunc[S ~[]E, E any](s S, add func(x, y E) E) S {
	sums := make(S, 0, len(s))

	for i, e := range s {
		if i == 0 {
			sums = append(sums, e)
			continue
		}

		sums = append(sums, add(sums[i-1], e))
	}

	return sums
}

// CumSumOwned overwrites the provided slice with the running sums of its elements and returns it.
//
// NOTE: The caller should consider the provided slice consumed, the returned slice uses the same storage.
func CumSumOwned[S ~[]E, E Addable](s S) S {
	return CumSumOwnedFunc(s, add[E])
}

// CumSumOwnedFunc is like 'CumSumOwned' but combines elements using the given function, called as 'add(s[i-1], s[i])'
// where 's[i-1]' already holds its running sum.
//
// NOTE: Should 'add' panic, the provided slice is left in a partially updated state.
func CumSumOwnedFunc[S ~[]E, E any](s S, add func(x, y E) E) S {
	for i := 1; i < len(s); i++ {
		s[i] = add(s[i-1], s[i])
	}

	return s
}
