package span

import "strings"

// Trim resolvers compute the single range of the line to excise; the caller
// keeps the prefix before the range and the suffix after it. An empty range
// means nothing is removed.

// TrimFromPat resolves the excision from the first occurrence of pattern
// through end of line. When the pattern is absent nothing is excised.
func TrimFromPat(input, pattern string) Range {
	i := strings.Index(input, pattern)
	if i < 0 {
		return Range{}
	}
	return Range{i, len(input)}
}

// TrimFromPatToPat resolves the excision from the first occurrence of start
// to the last occurrence of end. When start is absent nothing is excised;
// when end is absent, or its last occurrence precedes the start anchor, the
// excision extends through end of line.
func TrimFromPatToPat(input, start, end string) Range {
	s := strings.Index(input, start)
	if s < 0 {
		return Range{}
	}
	e := strings.LastIndex(input, end)
	if e < 0 || e < s {
		e = len(input)
	}
	return Range{s, e}
}

// TrimUntilPat resolves the excision from start of line up to, not
// including, the first occurrence of pattern. When the pattern is absent
// nothing is excised.
func TrimUntilPat(input, pattern string) Range {
	i := strings.Index(input, pattern)
	if i < 0 {
		return Range{}
	}
	return Range{0, i}
}

// TrimToPat resolves the excision from start of line through the first
// occurrence of pattern, pattern included. When the pattern is absent
// nothing is excised.
func TrimToPat(input, pattern string) Range {
	i := strings.Index(input, pattern)
	if i < 0 {
		return Range{}
	}
	return Range{0, i + len(pattern)}
}

// TrimFromIndex resolves the excision from index through end of line.
// Index zero means "unspecified" and excises nothing.
func TrimFromIndex(input string, index int) (Range, error) {
	if index == 0 {
		return Range{}, nil
	}
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	return Range{index, len(input)}, nil
}

// TrimFromIndexToIndex resolves the excision [start, end). An end at or
// before start excises nothing; the inversion check runs before bounds
// validation so an inverted range is a no-op on any input.
func TrimFromIndexToIndex(input string, start, end int) (Range, error) {
	if end <= start {
		return Range{}, nil
	}
	if err := checkPos(start, len(input)); err != nil {
		return Range{}, err
	}
	if err := checkPos(end, len(input)); err != nil {
		return Range{}, err
	}
	return Range{start, end}, nil
}

// TrimFromIndexToOffset resolves the excision anchored at index, extending
// offset bytes forward, or covering the offset bytes before the index when
// offset is negative.
func TrimFromIndexToOffset(input string, index, offset int) (Range, error) {
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	return offsetRange(index, offset, len(input))
}

// TrimUntilIndex resolves the excision of the first index bytes.
func TrimUntilIndex(input string, index int) (Range, error) {
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	return Range{0, index}, nil
}

// TrimFromPatToIndex resolves the excision from the first occurrence of
// pattern (position 0 when absent) up to index. An index before the anchor
// is an ordering violation; an index equal to the anchor excises nothing.
func TrimFromPatToIndex(input, pattern string, index int) (Range, error) {
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	anchor := patternAnchor(input, pattern)
	switch {
	case index < anchor:
		return Range{}, &OrderingError{Index: index, Found: anchor, Pattern: pattern}
	case index == anchor:
		return Range{}, nil
	}
	return Range{anchor, index}, nil
}

// TrimFromIndexToPat resolves the excision from index up to the first
// occurrence of pattern (position 0 when absent). A pattern occurrence
// before the index is an ordering violation; an occurrence at the index
// excises nothing.
func TrimFromIndexToPat(input string, index int, pattern string) (Range, error) {
	if err := checkPos(index, len(input)); err != nil {
		return Range{}, err
	}
	anchor := patternAnchor(input, pattern)
	switch {
	case anchor < index:
		return Range{}, &OrderingError{Index: index, Found: anchor, Pattern: pattern}
	case anchor == index:
		return Range{}, nil
	}
	return Range{index, anchor}, nil
}

// Trim strips leading and trailing whitespace from input, or repeated
// leading and trailing occurrences of pattern when one is given. This is a
// prefix/suffix strip, not a range excision.
func Trim(input, pattern string) string {
	if pattern == "" {
		return strings.TrimSpace(input)
	}
	for strings.HasPrefix(input, pattern) {
		input = input[len(pattern):]
	}
	for strings.HasSuffix(input, pattern) {
		input = input[:len(input)-len(pattern)]
	}
	return input
}
