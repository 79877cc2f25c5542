package cumsum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

type sliceTest struct {
	name     string
	s        []int
	expected []int
}

var sliceTests = []*sliceTest{
	{
		name:     "NilSlice",
		expected: make([]int, 0),
	},
	{
		name:     "EmptySlice",
		s:        make([]int, 0),
		expected: make([]int, 0),
	},
	{
		name:     "SingleElement",
		s:        []int{1},
		expected: []int{1},
	},
	{
		name:     "ThreeElements",
		s:        []int{1, 2, 3},
		expected: []int{1, 3, 6},
	},
	{
		name:     "FourElements",
		s:        []int{1, 2, 3, 4},
		expected: []int{1, 3, 6, 10},
	},
	{
		name:     "NegativeElements",
		s:        []int{5, -3, 2},
		expected: []int{5, 2, 4},
	},
}

func TestCumSum(t *testing.T) {
	for _, test := range sliceTests {
		t.Run(test.name, func(t *testing.T) {
			var before []int
			if test.s != nil {
				before = append(make([]int, 0, len(test.s)), test.s...)
			}

			require.Equal(t, test.expected, CumSum(test.s))
			require.Equal(t, before, test.s)
		})
	}
}

func TestCumSumDoesNotShareStorage(t *testing.T) {
	s := []int{1, 2, 3}

	sums := CumSum(s)
	sums[0] = 42

	require.Equal(t, []int{1, 2, 3}, s)
}

func TestCumSumOwned(t *testing.T) {
	for _, test := range sliceTests {
		t.Run(test.name, func(t *testing.T) {
			var s []int
			if test.s != nil {
				s = append(make([]int, 0, len(test.s)), test.s...)
			}

			sums := CumSumOwned(s)
			require.Len(t, sums, len(test.expected))
			require.Equal(t, test.expected, append(make([]int, 0), sums...))
		})
	}
}

func TestCumSumOwnedReusesStorage(t *testing.T) {
	s := []int{1, 2, 3, 4}

	sums := CumSumOwned(s)

	require.Equal(t, []int{1, 3, 6, 10}, s)
	require.Same(t, &s[0], &sums[0])
}

func TestCumSumOwnedMatchesCumSum(t *testing.T) {
	s := []int{7, -2, 0, 13, -8, 1}

	require.Equal(t, CumSum(s), CumSumOwned(append([]int(nil), s...)))
}

type namedInts []int

func TestCumSumPreservesSliceType(t *testing.T) {
	var sums namedInts = CumSum(namedInts{1, 2, 3})
	require.Equal(t, namedInts{1, 3, 6}, sums)

	sums = CumSumOwned(namedInts{1, 2, 3})
	require.Equal(t, namedInts{1, 3, 6}, sums)
}

func TestCumSumElementTypes(t *testing.T) {
	t.Run("Float", func(t *testing.T) {
		require.Equal(t, []float64{0.5, 1.75, -0.25}, CumSum([]float64{0.5, 1.25, -2}))
	})

	t.Run("Complex", func(t *testing.T) {
		require.Equal(t, []complex128{1 + 1i, 3, 3 + 2i}, CumSum([]complex128{1 + 1i, 2 - 1i, 2i}))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, []string{"a", "ab", "abc"}, CumSum([]string{"a", "b", "c"}))
		require.Equal(t, []string{"a", "ab", "abc"}, CumSumOwned([]string{"a", "b", "c"}))
	})

	t.Run("Unsigned", func(t *testing.T) {
		require.Equal(t, []uint8{200, 244, 32}, CumSum([]uint8{200, 44, 44}))
	})
}

func TestCumSumInheritsAdditionSemantics(t *testing.T) {
	t.Run("IntegerWrapAround", func(t *testing.T) {
		sums := CumSum([]int8{math.MaxInt8, 1})
		require.Equal(t, []int8{math.MaxInt8, math.MinInt8}, sums)
	})

	t.Run("NaNPropagates", func(t *testing.T) {
		sums := CumSum([]float64{1, math.NaN(), 1})
		require.Equal(t, 1.0, sums[0])
		require.True(t, math.IsNaN(sums[1]))
		require.True(t, math.IsNaN(sums[2]))
	})

	t.Run("Infinity", func(t *testing.T) {
		sums := CumSumOwned([]float64{math.Inf(1), math.Inf(-1)})
		require.True(t, math.IsInf(sums[0], 1))
		require.True(t, math.IsNaN(sums[1]))
	})
}

func TestCumSumFunc(t *testing.T) {
	type call struct{ a, b int }

	var calls []call

	sums := CumSumFunc([]int{1, 2, 3}, func(a, b int) int {
		calls = append(calls, call{a: a, b: b})
		return a + b
	})

	require.Equal(t, []int{1, 3, 6}, sums)
	require.Equal(t, []call{{a: 1, b: 2}, {a: 3, b: 3}}, calls)
}

func TestCumSumFuncNotCalledForShortInputs(t *testing.T) {
	require.Equal(t, []int{}, CumSumFunc([]int{}, nil))
	require.Equal(t, []int{4}, CumSumFunc([]int{4}, nil))
	require.Equal(t, []int{4}, CumSumOwnedFunc([]int{4}, nil))
}

func TestCumSumFuncNonCommutative(t *testing.T) {
	// Subtraction isn't commutative nor associative, the elements must be combined strictly left to right
	sums := CumSumFunc([]int{10, 3, 2}, func(a, b int) int { return a - b })
	require.Equal(t, []int{10, 7, 5}, sums)

	sums = CumSumOwnedFunc([]int{10, 3, 2}, func(a, b int) int { return a - b })
	require.Equal(t, []int{10, 7, 5}, sums)
}

func TestCumSumFuncBigInt(t *testing.T) {
	s := []*big.Int{big.NewInt(math.MaxInt64), big.NewInt(math.MaxInt64), big.NewInt(2)}

	sums := CumSumFunc(s, func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) })

	expected, ok := new(big.Int).SetString("18446744073709551616", 10)
	require.True(t, ok)
	require.Zero(t, expected.Cmp(sums[2]))
	require.Equal(t, int64(math.MaxInt64), s[1].Int64())
}

func TestCumSumOwnedFuncPanicPropagates(t *testing.T) {
	s := []int{1, 2, 3, 4}

	require.PanicsWithValue(t, "boom", func() {
		CumSumOwnedFunc(s, func(a, b int) int {
			if b == 3 {
				panic("boom")
			}

			return a + b
		})
	})

	require.Equal(t, []int{1, 3}, s[:2])
}
