package span

import "strings"

// Cut resolvers compute the single range of the line to retain; everything
// outside the range is discarded by the caller.

// CutFromPat resolves the range from the first occurrence of pattern
// through end of line. When the pattern is absent the whole line is
// retained.
func CutFromPat(input, pattern string) Range {
	i := strings.Index(input, pattern)
	if i < 0 {
		i = 0
	}
	return Range{i, len(input)}
}

// CutUntilPat resolves the range from start of line up to, not including,
// the first occurrence of pattern, or the whole line when absent.
func CutUntilPat(input, pattern string) Range {
	i := strings.Index(input, pattern)
	if i < 0 {
		i = len(input)
	}
	return Range{0, i}
}

// CutFromPatToPat resolves the range from the first occurrence of start to
// the last occurrence of end. A missing start anchors at position 0, a
// missing end at end of line. When the last end occurrence precedes the
// start anchor the whole line is retained; pattern lookups never fail.
func CutFromPatToPat(input, start, end string) Range {
	s := strings.Index(input, start)
	if s < 0 {
		s = 0
	}
	e := strings.LastIndex(input, end)
	if e < 0 {
		e = len(input)
	}
	if e < s {
		return whole(input)
	}
	return Range{s, e}
}

// CutFromPatToOffset resolves a range anchored at the first occurrence of
// pattern (position 0 when absent), extending offset bytes forward, or
// covering the offset bytes before the anchor when offset is negative.
// A range escaping the input is a bounds violation.
func CutFromPatToOffset(input, pattern string, offset int) (Range, error) {
	return offsetRange(patternAnchor(input, pattern), offset, len(input))
}

// CutFromIndex resolves the range from index through end of line.
func CutFromIndex(input string, index int) (Range, error) {
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	return Range{index, len(input)}, nil
}

// CutFromIndexToIndex resolves the range [start, end). Out-of-range indices
// are a bounds violation; end before start is an inverted-range violation.
func CutFromIndexToIndex(input string, start, end int) (Range, error) {
	if err := checkPos(start, len(input)); err != nil {
		return Range{}, err
	}
	if err := checkPos(end, len(input)); err != nil {
		return Range{}, err
	}
	if end < start {
		return Range{}, &InvertedRangeError{Start: start, End: end}
	}
	return Range{start, end}, nil
}

// CutFromIndexToOffset resolves a range anchored at index, extending offset
// bytes forward, or covering the offset bytes before the index when offset
// is negative.
func CutFromIndexToOffset(input string, index, offset int) (Range, error) {
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	return offsetRange(index, offset, len(input))
}

// CutUntilIndex resolves the range [0, index). Index zero means
// "unspecified" and retains the whole line.
func CutUntilIndex(input string, index int) (Range, error) {
	if index == 0 {
		return whole(input), nil
	}
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	return Range{0, index}, nil
}

// CutFromPatToIndex resolves the range from the first occurrence of pattern
// (position 0 when absent) up to index. An index before the anchor is an
// ordering violation; an index equal to the anchor retains the whole line.
func CutFromPatToIndex(input, pattern string, index int) (Range, error) {
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	anchor := patternAnchor(input, pattern)
	switch {
	case index < anchor:
		return Range{}, &OrderingError{Index: index, Found: anchor, Pattern: pattern}
	case index == anchor:
		return whole(input), nil
	}
	return Range{anchor, index}, nil
}

// CutFromIndexToPat resolves the range from index up to the first
// occurrence of pattern (position 0 when absent). A pattern occurrence
// before the index is an ordering violation; an occurrence at the index
// retains the whole line.
func CutFromIndexToPat(input string, index int, pattern string) (Range, error) {
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	anchor := patternAnchor(input, pattern)
	switch {
	case anchor < index:
		return Range{}, &OrderingError{Index: index, Found: anchor, Pattern: pattern}
	case anchor == index:
		return whole(input), nil
	}
	return Range{index, anchor}, nil
}
