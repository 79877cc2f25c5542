package cumsum

// CumSumArray returns a new array containing the running sums of the elements in the provided array.
//
// NOTE: The result starts out as the zero value of 'A' which is overwritten element by element.
func CumSumArray[E Addable, A Array[E]](a A) A {
	return CumSumArrayFunc(a, add[E])
}

// CumSumArrayFunc is like 'CumSumArray' but combines elements using the given function.
func CumSumArrayFunc[E any, A Array[E]](a A, add func(x, y E) E) A {
	var sums A

	for i := 0; i < len(a); i++ {
		if i == 0 {
			sums[i] = a[i]
			continue
		}

		sums[i] = add(sums[i-1], a[i])
	}

	return sums
}

// CumSumArrayOwned accumulates the running sums of the provided array into its own storage and returns it.
func CumSumArrayOwned[E Addable, A Array[E]](a A) A {
	return CumSumArrayOwnedFunc(a, add[E])
}

// CumSumArrayOwnedFunc is like 'CumSumArrayOwned' but combines elements using the given function.
func CumSumArrayOwnedFunc[E any, A Array[E]](a A, add func(x, y E) E) A {
	for i := 1; i < len(a); i++ {
		a[i] = add(a[i-1], a[i])
	}

	return a
}
