package cumsum

import "fmt"

// LengthMismatchError is returned when the destination given to 'CumSumInto' can't hold exactly the running sums of
// the source.
type LengthMismatchError struct {
	Dst int
	Src int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("destination has length %d but source has length %d", e.Dst, e.Src)
}
