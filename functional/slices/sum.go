// Package slices provides generic slice utility functions.
package slices

import "github.com/couchbase/tools-cumsum/cumsum"

// Sum returns the summation of the elements in the provided slice, which is the last of its running sums.
//
// NOTE: The elements are added left to right starting from the first element, returning the zero value of 'E' for an
// empty slice.
func Sum[S ~[]E, E cumsum.Addable](s S) E {
	var total E

	for i, e := range s {
		if i == 0 {
			total = e
			continue
		}

		total += e
	}

	return total
}
