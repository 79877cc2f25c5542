package cumsum

import "golang.org/x/exp/constraints"

// MaxArrayLen is the largest array length accepted by the fixed-size functions. Longer arrays should be sliced and
// passed to the dynamically sized functions, or to 'CumSumInto' with a destination of the same length.
const MaxArrayLen = 32

// Addable is satisfied by every type which supports the '+' operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Array is satisfied by any array of 'E' whose length is at most 'MaxArrayLen'.
//
// NOTE: Go doesn't support constant type parameters, the length of the array is therefore part of the type argument
// rather than being a parameter of its own. As a result 'E' can't be inferred and must be supplied explicitly, e.g.
// 'CumSumArray[int](a)'.
type Array[E any] interface {
	~[0]E | ~[1]E | ~[2]E | ~[3]E | ~[4]E | ~[5]E | ~[6]E | ~[7]E |
		~[8]E | ~[9]E | ~[10]E | ~[11]E | ~[12]E | ~[13]E | ~[14]E | ~[15]E |
		~[16]E | ~[17]E | ~[18]E | ~[19]E | ~[20]E | ~[21]E | ~[22]E | ~[23]E |
		~[24]E | ~[25]E | ~[26]E | ~[27]E | ~[28]E | ~[29]E | ~[30]E | ~[31]E |
		~[32]E
}

// add is the combining function used by the operator based functions.
func add[E Addable](a, b E) E {
	return a + b
}
