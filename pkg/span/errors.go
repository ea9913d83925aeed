package span

import "fmt"

// BoundsError reports a computed byte position outside [0, len(input)].
type BoundsError struct {
	Pos    int // the offending byte position
	Length int // length of the input line
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position %d is outside input bounds (line length %d)", e.Pos, e.Length)
}

// OrderingError reports an explicit index on the wrong side of a found
// pattern occurrence for the operation's direction.
type OrderingError struct {
	Index   int    // the explicit index
	Found   int    // byte offset of the pattern occurrence
	Pattern string // the pattern searched for
}

func (e *OrderingError) Error() string {
	if e.Found > e.Index {
		return fmt.Sprintf("pattern %q found at %d, after index %d", e.Pattern, e.Found, e.Index)
	}
	return fmt.Sprintf("pattern %q found at %d, before index %d", e.Pattern, e.Found, e.Index)
}

// InvertedRangeError reports an explicit range whose end precedes its start.
type InvertedRangeError struct {
	Start int
	End   int
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("range end %d precedes range start %d", e.End, e.Start)
}
