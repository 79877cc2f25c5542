/*
Package cumsum computes cumulative (running) sums of ordered sequences.

For an input 'x' of length 'n' the result 'y' has the same length, with 'y[0] == x[0]' and 'y[i] == y[i-1] + x[i]'.
The elements are combined strictly left to right and no identity element is assumed, the first element of the result
is always a copy of the first element of the input.

The functions are split along two axes:

  - Borrowed or owned: 'CumSum' and 'CumSumArray' leave their input untouched and return new storage, whereas
    'CumSumOwned' and 'CumSumArrayOwned' overwrite their input in place and return it.
  - Dynamically or statically sized: the 'Array' functions operate on Go arrays, so the compiler checks that the input
    and output have the same length.

Every function has a '*Func' counterpart accepting the combining operation explicitly, for element types which don't
support the '+' operator (e.g. '*big.Int').

No overflow, NaN or domain checking is performed, whatever the addition does (wrapping, NaN propagation, panicking) is
inherited verbatim.
*/
package cumsum
