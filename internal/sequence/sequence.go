// Package sequence draws random integer sequences from an inclusive range,
// with or without repetition, and formats them for display.
//
// Every call is independent: it owns a private random source and shares no
// state, so the package can be used from any number of goroutines.
package sequence

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// ranges up to this size are shuffled in a materialised pool;
// larger ranges use a sparse pool holding only displaced entries
const densePoolLimit = 1 << 16

// MaxCount bounds every request regardless of configuration; callers may
// impose a lower limit with WithinLimit
const MaxCount = 1_000_000

// NewRequest builds a request from the form's boolean duplicate toggle
func NewRequest(count, min, max int64, allowDuplicates bool) Request {
	mode := ModeUniqueNumbers
	if allowDuplicates {
		mode = ModeAllowDuplicates
	}

	return Request{Count: count, Min: min, Max: max, Mode: mode}
}

// ParseRequest builds a request from raw text fields as submitted by a form
func ParseRequest(count, min, max, mode string) (Request, error) {
	c, err := parseField("count", count)
	if err != nil {
		return Request{}, err
	}

	lo, err := parseField("min", min)
	if err != nil {
		return Request{}, err
	}

	hi, err := parseField("max", max)
	if err != nil {
		return Request{}, err
	}

	return Request{Count: c, Min: lo, Max: hi, Mode: Mode(strings.TrimSpace(mode))}, nil
}

func parseField(name, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, invalidInput(name, value)
	}

	return n, nil
}

// Validate checks the request in order: count, range orientation, unique
// capacity, mode, then the MaxCount bound
func (r Request) Validate() error {
	if err := r.validateShape(); err != nil {
		return err
	}

	return r.WithinLimit(MaxCount)
}

// WithinLimit reports count_limit_exceeded when Count is above limit;
// limit <= 0 means only MaxCount applies
func (r Request) WithinLimit(limit int64) error {
	if limit <= 0 || limit > MaxCount {
		limit = MaxCount
	}

	if r.Count > limit {
		return countTooLarge(r.Count, limit)
	}

	return nil
}

func (r Request) validateShape() error {
	if r.Count <= 0 {
		return nonPositiveCount(r.Count)
	}

	if r.Min > r.Max {
		return invertedRange(r.Min, r.Max)
	}

	switch r.Mode {
	case ModeAllowDuplicates:
		return nil
	case ModeUniqueNumbers:
		if !r.fitsUnique() {
			return rangeTooSmall(r.Count, r.Min, r.Max)
		}
		return nil
	default:
		return invalidMode(r.Mode)
	}
}

// max - min as an unsigned distance; range size is span + 1
func (r Request) span() uint64 {
	return uint64(r.Max) - uint64(r.Min)
}

func (r Request) fitsUnique() bool {
	span := r.span()
	if span == math.MaxUint64 {
		// the full int64 domain holds more values than any int64 count
		return true
	}

	return uint64(r.Count) <= span+1
}

// NewSource returns a fresh non-cryptographic source seeded from the runtime generator
func NewSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generate validates req and draws its values from a private source
func Generate(req Request) (*Result, error) {
	return GenerateFrom(NewSource(), req)
}

// GenerateFrom validates req and draws its values from src
func GenerateFrom(src Source, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var values []int64
	if req.Mode == ModeAllowDuplicates {
		values = drawWithDuplicates(src, req)
	} else {
		values = drawUnique(src, req)
	}

	return &Result{
		Values:  values,
		Display: Format(values, req.Min, req.Max),
	}, nil
}

// returns a uniform offset in [0, span]
func drawOffset(src Source, span uint64) uint64 {
	if span == math.MaxUint64 {
		return src.Uint64()
	}

	return src.Uint64N(span + 1)
}

func drawWithDuplicates(src Source, req Request) []int64 {
	span := req.span()
	values := make([]int64, req.Count)

	for i := range values {
		values[i] = int64(uint64(req.Min) + drawOffset(src, span))
	}

	return values
}

// partial Fisher-Yates: position i takes a uniform pick from the
// candidates not yet drawn, so exactly Count draws are made
func drawUnique(src Source, req Request) []int64 {
	span := req.span()
	count := uint64(req.Count)

	if span < densePoolLimit {
		pool := make([]int64, span+1)
		for i := range pool {
			pool[i] = req.Min + int64(i)
		}

		for i := uint64(0); i < count; i++ {
			j := i + drawOffset(src, span-i)
			pool[i], pool[j] = pool[j], pool[i]
		}

		return pool[:count:count]
	}

	// offsets that were swapped away from their home position
	displaced := make(map[uint64]uint64, count)
	at := func(k uint64) uint64 {
		if v, ok := displaced[k]; ok {
			return v
		}
		return k
	}

	values := make([]int64, count)
	for i := uint64(0); i < count; i++ {
		j := i + drawOffset(src, span-i)
		picked := at(j)
		displaced[j] = at(i)
		delete(displaced, i)
		values[i] = int64(uint64(req.Min) + picked)
	}

	return values
}

// Format renders values for display: space separated when any value may need more
// than one character (max > 9 or min < 0), otherwise concatenated digits
func Format(values []int64, min, max int64) string {
	sep := ""
	if max > 9 || min < 0 {
		sep = " "
	}

	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}

	return b.String()
}
