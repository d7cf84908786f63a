package sequence

// Mode selects whether values may repeat within one result
type Mode string

const (
	ModeAllowDuplicates Mode = "allow_duplicates"
	ModeUniqueNumbers   Mode = "unique_numbers"
)

// Request describes one generation: count values from the inclusive range [Min, Max]
type Request struct {
	Count int64
	Min   int64
	Max   int64
	Mode  Mode
}

// Result holds the drawn values in draw order and their display form
type Result struct {
	Values  []int64 `json:"values"`
	Display string  `json:"display"`
}

// Source is the random source a generation draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// returns a uniform value in [0, n); n > 0
	Uint64N(n uint64) uint64

	// returns a uniform 64-bit value
	Uint64() uint64
}
