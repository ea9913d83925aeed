// Package span resolves patterns, indices, offsets and counts against a
// single line of text, producing byte ranges and split boundaries.
//
// All positions are byte offsets into the line. Resolvers are pure: no I/O,
// no process termination. Boundary violations are reported as typed errors
// (*BoundsError, *OrderingError, *InvertedRangeError) for the caller to act
// on. A missing pattern is never an error; every pattern-based resolver
// defines a fallback position instead (start of line, end of line, or
// whole-line no-op, per resolver).
//
// Offsets that land inside a multi-byte code point are not validated: the
// engine is byte-oriented, and slicing there yields the raw bytes.
package span

import "strings"

// A Range is a contiguous run of byte positions [Start, End) in a line.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool { return r.End <= r.Start }

// Of returns the bytes of s covered by the range.
func (r Range) Of(s string) string { return s[r.Start:r.End] }

// ExciseFrom returns s with the bytes covered by the range removed.
func (r Range) ExciseFrom(s string) string {
	if r.Empty() {
		return s
	}
	return s[:r.Start] + s[r.End:]
}

// whole returns the range covering all of s.
func whole(s string) Range { return Range{0, len(s)} }

// checkPos validates that pos is a legal slicing position for a line of
// length n.
func checkPos(pos, n int) error {
	if pos < 0 || pos > n {
		return &BoundsError{Pos: pos, Length: n}
	}
	return nil
}

// patternAnchor returns the byte offset of the first occurrence of pattern,
// or 0 when the pattern is absent.
func patternAnchor(input, pattern string) int {
	if i := strings.Index(input, pattern); i >= 0 {
		return i
	}
	return 0
}

// offsetRange resolves [anchor, anchor+offset) for non-negative offsets and
// [anchor+offset, anchor) for negative ones, validating both bounds against
// a line of length n.
func offsetRange(anchor, offset, n int) (Range, error) {
	r := Range{anchor, anchor + offset}
	if offset < 0 {
		r = Range{anchor + offset, anchor}
	}
	if r.Start < 0 {
		return Range{}, &BoundsError{Pos: r.Start, Length: n}
	}
	if r.End > n {
		return Range{}, &BoundsError{Pos: r.End, Length: n}
	}
	return r, nil
}

// allOccurrences returns the byte offsets of every non-overlapping
// occurrence of pattern in input, scanning left to right. The pattern must
// be non-empty.
func allOccurrences(input, pattern string) []int {
	var occ []int
	for i := 0; ; {
		j := strings.Index(input[i:], pattern)
		if j < 0 {
			return occ
		}
		occ = append(occ, i+j)
		i += j + len(pattern)
	}
}

// Occurrences returns the byte offsets of the occurrences of pattern
// selected by count: nil selects all, 0 selects none, n > 0 the first n,
// and n < 0 the last |n|. Offsets are always in ascending order.
func Occurrences(input, pattern string, count *int) []int {
	occ := allOccurrences(input, pattern)
	switch {
	case count == nil:
	case *count == 0:
		return nil
	case *count > 0:
		if *count < len(occ) {
			occ = occ[:*count]
		}
	default:
		if n := -*count; n < len(occ) {
			occ = occ[len(occ)-n:]
		}
	}
	return occ
}
