package sequence

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// always draws the highest offset allowed
type maxSource struct{}

func (maxSource) Uint64N(n uint64) uint64 { return n - 1 }
func (maxSource) Uint64() uint64          { return math.MaxUint64 }

// always draws zero
type zeroSource struct{}

func (zeroSource) Uint64N(uint64) uint64 { return 0 }
func (zeroSource) Uint64() uint64        { return 0 }

func TestGenerate_WithDuplicatesInRange(t *testing.T) {
	src := seeded(1)

	for i := 0; i < 200; i++ {
		req := NewRequest(int64(1+i%40), int64(-50+i), int64(-50+i+i%17), true)

		result, err := GenerateFrom(src, req)
		require.NoError(t, err)
		require.Len(t, result.Values, int(req.Count))

		for _, v := range result.Values {
			assert.GreaterOrEqual(t, v, req.Min)
			assert.LessOrEqual(t, v, req.Max)
		}
	}
}

func TestGenerate_UniqueDistinctInRange(t *testing.T) {
	src := seeded(2)

	for i := 0; i < 200; i++ {
		min := int64(-100 + i)
		max := min + int64(i%60)
		count := int64(1 + i%(int(max-min)+1))
		req := NewRequest(count, min, max, false)

		result, err := GenerateFrom(src, req)
		require.NoError(t, err)
		require.Len(t, result.Values, int(count))

		seen := make(map[int64]bool, len(result.Values))
		for _, v := range result.Values {
			assert.False(t, seen[v], "value %d drawn twice", v)
			seen[v] = true
			assert.GreaterOrEqual(t, v, min)
			assert.LessOrEqual(t, v, max)
		}
	}
}

func TestGenerate_UniqueFullRangeIsPermutation(t *testing.T) {
	result, err := GenerateFrom(seeded(3), NewRequest(21, -10, 10, false))
	require.NoError(t, err)

	got := append([]int64(nil), result.Values...)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })

	want := make([]int64, 0, 21)
	for v := int64(-10); v <= 10; v++ {
		want = append(want, v)
	}

	assert.Equal(t, want, got)
}

func TestGenerate_UniqueOneOverRangeFails(t *testing.T) {
	_, err := Generate(NewRequest(22, -10, 10, false))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRangeTooSmall))
	assert.Equal(t, KindRangeTooSmall, KindOf(err))
}

func TestGenerate_UniqueLargeRangeUsesSparsePool(t *testing.T) {
	req := NewRequest(5000, 1_000_000, 1_000_000+densePoolLimit*4, false)

	result, err := GenerateFrom(seeded(4), req)
	require.NoError(t, err)
	require.Len(t, result.Values, 5000)

	seen := make(map[int64]bool, len(result.Values))
	for _, v := range result.Values {
		require.False(t, seen[v], "value %d drawn twice", v)
		seen[v] = true
		assert.GreaterOrEqual(t, v, req.Min)
		assert.LessOrEqual(t, v, req.Max)
	}
}

func TestGenerate_SparsePoolWholeRange(t *testing.T) {
	// just above the dense limit, drawing every candidate
	size := int64(densePoolLimit + 1)
	req := NewRequest(size, 0, size-1, false)

	result, err := GenerateFrom(seeded(5), req)
	require.NoError(t, err)

	seen := make([]bool, size)
	for _, v := range result.Values {
		require.False(t, seen[v], "value %d drawn twice", v)
		seen[v] = true
	}
	for v, ok := range seen {
		assert.True(t, ok, "value %d never drawn", v)
	}
}

func TestGenerate_BoundaryValuesReachable(t *testing.T) {
	high, err := GenerateFrom(maxSource{}, NewRequest(3, 5, 8, true))
	require.NoError(t, err)
	assert.Equal(t, []int64{8, 8, 8}, high.Values)

	low, err := GenerateFrom(zeroSource{}, NewRequest(3, 5, 8, true))
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 5, 5}, low.Values)

	unique, err := GenerateFrom(maxSource{}, NewRequest(4, 5, 8, false))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{5, 6, 7, 8}, unique.Values)
	assert.Equal(t, int64(8), unique.Values[0])
}

func TestGenerate_FullInt64Domain(t *testing.T) {
	dup, err := GenerateFrom(maxSource{}, NewRequest(2, math.MinInt64, math.MaxInt64, true))
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MaxInt64, math.MaxInt64}, dup.Values)

	unique, err := GenerateFrom(seeded(6), NewRequest(100, math.MinInt64, math.MaxInt64, false))
	require.NoError(t, err)
	assert.Len(t, unique.Values, 100)
}

func TestGenerate_SingleValueRange(t *testing.T) {
	result, err := Generate(NewRequest(1, 7, 7, false))
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, result.Values)
	assert.Equal(t, "7", result.Display)

	repeated, err := Generate(NewRequest(4, 7, 7, true))
	require.NoError(t, err)
	assert.Equal(t, "7777", repeated.Display)
}

func TestGenerate_DisplayFormatting(t *testing.T) {
	digits, err := Generate(NewRequest(5, 0, 9, true))
	require.NoError(t, err)
	assert.Len(t, digits.Display, 5)
	assert.NotContains(t, digits.Display, " ")

	wide, err := Generate(NewRequest(3, 0, 99, true))
	require.NoError(t, err)
	assert.Len(t, strings.Split(wide.Display, " "), 3)

	signed, err := GenerateFrom(zeroSource{}, NewRequest(3, -5, 5, false))
	require.NoError(t, err)
	assert.Equal(t, "-5 -4 -3", signed.Display)
}

func TestValidate_Order(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		kind Kind
	}{
		{"zero count", Request{Count: 0, Min: 0, Max: 9, Mode: ModeAllowDuplicates}, KindNonPositiveCount},
		{"negative count beats inverted range", Request{Count: -1, Min: 9, Max: 0, Mode: ModeAllowDuplicates}, KindNonPositiveCount},
		{"inverted range", Request{Count: 5, Min: 9, Max: 0, Mode: ModeAllowDuplicates}, KindInvertedRange},
		{"inverted range beats bad mode", Request{Count: 5, Min: 9, Max: 0, Mode: "sometimes"}, KindInvertedRange},
		{"range too small", Request{Count: 20, Min: 0, Max: 5, Mode: ModeUniqueNumbers}, KindRangeTooSmall},
		{"unknown mode", Request{Count: 20, Min: 0, Max: 5, Mode: "sometimes"}, KindInvalidMode},
		{"empty mode", Request{Count: 1, Min: 0, Max: 5}, KindInvalidMode},
		{"count above bound", Request{Count: MaxCount + 1, Min: 0, Max: 9, Mode: ModeAllowDuplicates}, KindCountTooLarge},
		{"bad mode beats count bound", Request{Count: MaxCount + 1, Min: 0, Max: 9, Mode: "sometimes"}, KindInvalidMode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.kind, KindOf(err))

			// same input, same verdict
			assert.Equal(t, tc.kind, KindOf(tc.req.Validate()))
		})
	}
}

func TestValidate_RangeTooSmallMessage(t *testing.T) {
	err := NewRequest(20, 0, 5, false).Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "20")
	assert.Contains(t, err.Error(), "0-5")
}

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest(" 5", "-3", "12 ", "unique_numbers")
	require.NoError(t, err)
	assert.Equal(t, Request{Count: 5, Min: -3, Max: 12, Mode: ModeUniqueNumbers}, req)

	for _, fields := range [][3]string{
		{"abc", "0", "9"},
		{"5", "", "9"},
		{"5", "0", "9.5"},
		{"5", "0", "99999999999999999999"},
	} {
		_, err := ParseRequest(fields[0], fields[1], fields[2], "allow_duplicates")
		assert.True(t, errors.Is(err, ErrInvalidInput), "fields %v", fields)
	}
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindUnexpected, KindOf(errors.New("boom")))
	assert.False(t, errors.Is(errors.New("boom"), ErrInvalidMode))
}

func TestGenerate_DigitFrequencySmoke(t *testing.T) {
	result, err := GenerateFrom(seeded(7), NewRequest(10000, 0, 9, true))
	require.NoError(t, err)

	var counts [10]int
	for _, v := range result.Values {
		counts[v]++
	}

	for digit, n := range counts {
		assert.InDelta(t, 1000, n, 150, "digit %d appeared %d times", digit, n)
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				result, err := Generate(NewRequest(10, 0, 9, false))
				assert.NoError(t, err)
				assert.Len(t, result.Values, 10)
			}
		}()
	}

	wg.Wait()
}

func TestGenerate_HugeCountRejected(t *testing.T) {
	req := NewRequest(math.MaxInt64, 0, 9, true)

	require.True(t, errors.Is(req.Validate(), ErrCountTooLarge))

	result, err := Generate(req)
	assert.Nil(t, result)
	assert.Equal(t, KindCountTooLarge, KindOf(err))

	result, err = Local{}.Generate(context.Background(), req)
	assert.Nil(t, result)
	assert.Equal(t, KindCountTooLarge, KindOf(err))
}

func TestLocal_MaxCount(t *testing.T) {
	gen := Local{MaxCount: 10}

	result, err := gen.Generate(context.Background(), NewRequest(10, 0, 9, false))
	require.NoError(t, err)
	assert.Len(t, result.Values, 10)

	_, err = gen.Generate(context.Background(), NewRequest(11, 0, 99, true))
	assert.True(t, errors.Is(err, ErrCountTooLarge))
	assert.Contains(t, err.Error(), "10")

	// shape errors are reported before the limit
	_, err = gen.Generate(context.Background(), NewRequest(11, 9, 0, true))
	assert.Equal(t, KindInvertedRange, KindOf(err))
}

func TestLocal_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Local{}.Generate(ctx, NewRequest(3, 0, 9, true))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithinLimit(t *testing.T) {
	req := NewRequest(500, 0, 9, true)

	assert.NoError(t, req.WithinLimit(500))
	assert.NoError(t, req.WithinLimit(0))
	assert.Equal(t, KindCountTooLarge, KindOf(req.WithinLimit(499)))

	// limits above the package bound are clamped to it
	big := NewRequest(MaxCount+1, 0, 9, true)
	assert.Equal(t, KindCountTooLarge, KindOf(big.WithinLimit(MaxCount*10)))
}
