package ops

import "strings"

// Output is the result of applying one Operation to one line: either a
// single string or an ordered sequence of segments. Multiple-segment
// outputs render newline-joined.
type Output struct {
	segments []string
	multiple bool
}

// Single wraps one resulting string.
func Single(s string) Output {
	return Output{segments: []string{s}}
}

// Multiple wraps an ordered sequence of segments. Order is significant and
// preserved.
func Multiple(segments []string) Output {
	return Output{segments: segments, multiple: true}
}

// IsMultiple reports whether the output is a segment sequence rather than a
// single string.
func (o Output) IsMultiple() bool { return o.multiple }

// Segments returns the output's strings; a Single output has exactly one.
func (o Output) Segments() []string { return o.segments }

// Render returns the output as written to the result stream: segments
// newline-joined, a single string as-is.
func (o Output) Render() string {
	return strings.Join(o.segments, "\n")
}
