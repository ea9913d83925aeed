package span

import "unicode"

// Split resolvers partition the line into an ordered sequence of segment
// ranges. Counts follow one convention throughout: nil splits at every
// separator occurrence, 0 leaves the line whole, n > 0 splits at the first
// n occurrences, and n < 0 at the last |n|. Segments are always emitted
// left to right, so a negative count yields the left remainder first.

// SplitAtIndex splits the line into exactly two segments at the given byte
// offset. There is no count; the offset must lie within the line.
func SplitAtIndex(input string, index int) ([]Range, error) {
	if err := checkPos(index, len(input)); err != nil {
		return nil, err
	}
	return []Range{{0, index}, {index, len(input)}}, nil
}

// SplitAtPat partitions the line at occurrences of the separator pattern
// selected by count. With no occurrences selected the whole line is the
// single segment. Joining the segments with the separator reproduces the
// line whenever every occurrence is split at.
func SplitAtPat(input, sep string, count *int) []Range {
	occ := Occurrences(input, sep, count)
	segs := make([]Range, 0, len(occ)+1)
	start := 0
	for _, i := range occ {
		segs = append(segs, Range{start, i})
		start = i + len(sep)
	}
	return append(segs, Range{start, len(input)})
}

// Tokens returns the ranges of the whitespace-delimited tokens of the line.
// Runs of whitespace act as a single separator, and leading or trailing
// whitespace delimits nothing.
func Tokens(input string) []Range {
	var toks []Range
	start := -1
	for i, r := range input {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, Range{start, i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, Range{start, len(input)})
	}
	return toks
}

// SplitAtWhitespace partitions the line into whitespace-delimited segments.
// A nil count yields every token. A positive count n splits at most n times
// from the left, with the remainder (inner whitespace preserved, trailing
// whitespace dropped) as the final segment. A negative count n yields the
// last |n| tokens individually in reverse order: a quirk inherited from the
// original tool, kept because downstream use depends on it. Count zero
// leaves the line whole.
func SplitAtWhitespace(input string, count *int) []Range {
	toks := Tokens(input)
	if count == nil {
		return toks
	}
	switch n := *count; {
	case n == 0:
		return []Range{whole(input)}
	case n > 0:
		if n >= len(toks) {
			return toks
		}
		segs := make([]Range, 0, n+1)
		segs = append(segs, toks[:n]...)
		return append(segs, Range{toks[n].Start, toks[len(toks)-1].End})
	default:
		n = -n
		if n > len(toks) {
			n = len(toks)
		}
		segs := make([]Range, 0, n)
		for i := len(toks) - 1; i >= len(toks)-n; i-- {
			segs = append(segs, toks[i])
		}
		return segs
	}
}
