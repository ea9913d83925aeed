package ops

import (
	"fmt"
	"strings"

	"github.com/praetorian-inc/snip/pkg/span"
)

// Apply maps one operation and one input line to exactly one Output by
// invoking the matching span resolver. Resolver errors are returned as-is
// so the caller decides whether they end the run; Apply itself never
// terminates anything.
func Apply(op Operation, line string) (Output, error) {
	if err := op.validate(); err != nil {
		return Output{}, err
	}

	switch op.kind {
	// Pattern-based.
	case KindSplitAtWhitespace:
		if unsplit(op.count) {
			return Single(line), nil
		}
		return segments(line, span.SplitAtWhitespace(line, op.count)), nil
	case KindSplitAtPat:
		if unsplit(op.count) {
			return Single(line), nil
		}
		return segments(line, span.SplitAtPat(line, op.pattern, op.count)), nil
	case KindSplitAtChar:
		if unsplit(op.count) {
			return Single(line), nil
		}
		return segments(line, span.SplitAtPat(line, string(op.char), op.count)), nil
	case KindCutFromPat:
		return Single(span.CutFromPat(line, op.pattern).Of(line)), nil
	case KindCutFromPatToPat:
		return Single(span.CutFromPatToPat(line, op.pattern, op.end).Of(line)), nil
	case KindCutFromPatToOffset:
		r, err := span.CutFromPatToOffset(line, op.pattern, op.offset)
		return cut(line, r, err)
	case KindCutUntilPat:
		return Single(span.CutUntilPat(line, op.pattern).Of(line)), nil
	case KindTrimFromPat:
		return Single(span.TrimFromPat(line, op.pattern).ExciseFrom(line)), nil
	case KindTrimFromPatToPat:
		return Single(span.TrimFromPatToPat(line, op.pattern, op.end).ExciseFrom(line)), nil
	case KindTrimUntilPat:
		return Single(span.TrimUntilPat(line, op.pattern).ExciseFrom(line)), nil
	case KindTrimToPat:
		return Single(span.TrimToPat(line, op.pattern).ExciseFrom(line)), nil
	case KindTrim:
		return Single(span.Trim(line, op.pattern)), nil
	case KindReplace:
		return Single(replace(line, op.pattern, op.with, op.count)), nil
	case KindRemove:
		return Single(replace(line, op.pattern, "", op.count)), nil

	// Index-based.
	case KindSplitAtIndex:
		segs, err := span.SplitAtIndex(line, op.index)
		if err != nil {
			return Output{}, err
		}
		return segments(line, segs), nil
	case KindCutFromIndex:
		r, err := span.CutFromIndex(line, op.index)
		return cut(line, r, err)
	case KindCutFromIndexToIndex:
		r, err := span.CutFromIndexToIndex(line, op.index, op.end2)
		return cut(line, r, err)
	case KindCutFromIndexToOffset:
		r, err := span.CutFromIndexToOffset(line, op.index, op.offset)
		return cut(line, r, err)
	case KindCutUntilIndex:
		r, err := span.CutUntilIndex(line, op.index)
		return cut(line, r, err)
	case KindTrimFromIndex:
		r, err := span.TrimFromIndex(line, op.index)
		return trim(line, r, err)
	case KindTrimFromIndexToIndex:
		r, err := span.TrimFromIndexToIndex(line, op.index, op.end2)
		return trim(line, r, err)
	case KindTrimFromIndexToOffset:
		r, err := span.TrimFromIndexToOffset(line, op.index, op.offset)
		return trim(line, r, err)
	case KindTrimUntilIndex:
		r, err := span.TrimUntilIndex(line, op.index)
		return trim(line, r, err)

	// Mixed pattern/index.
	case KindCutFromPatToIndex:
		r, err := span.CutFromPatToIndex(line, op.pattern, op.index)
		return cut(line, r, err)
	case KindCutFromIndexToPat:
		r, err := span.CutFromIndexToPat(line, op.index, op.pattern)
		return cut(line, r, err)
	case KindTrimFromPatToIndex:
		r, err := span.TrimFromPatToIndex(line, op.pattern, op.index)
		return trim(line, r, err)
	case KindTrimFromIndexToPat:
		r, err := span.TrimFromIndexToPat(line, op.index, op.pattern)
		return trim(line, r, err)
	}

	return Output{}, fmt.Errorf("unhandled operation kind %v", op.kind)
}

// unsplit reports whether a count of zero turns a split into a no-op that
// returns the whole line as a single unsplit unit.
func unsplit(count *int) bool { return count != nil && *count == 0 }

// segments materializes split ranges into a Multiple output.
func segments(line string, ranges []span.Range) Output {
	segs := make([]string, len(ranges))
	for i, r := range ranges {
		segs[i] = r.Of(line)
	}
	return Multiple(segs)
}

// cut materializes a retain-range resolution.
func cut(line string, r span.Range, err error) (Output, error) {
	if err != nil {
		return Output{}, err
	}
	return Single(r.Of(line)), nil
}

// trim materializes an excise-range resolution.
func trim(line string, r span.Range, err error) (Output, error) {
	if err != nil {
		return Output{}, err
	}
	return Single(r.ExciseFrom(line)), nil
}

// replace rewrites the occurrences of pattern selected by count with the
// replacement string.
func replace(line, pattern, with string, count *int) string {
	occ := span.Occurrences(line, pattern, count)
	if len(occ) == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + len(occ)*(len(with)-len(pattern)))
	last := 0
	for _, i := range occ {
		b.WriteString(line[last:i])
		b.WriteString(with)
		last = i + len(pattern)
	}
	b.WriteString(line[last:])
	return b.String()
}

// patternKinds lists the kinds whose primary pattern must be non-empty; an
// empty literal has no well-defined occurrence.
var patternKinds = map[Kind]bool{
	KindSplitAtPat:         true,
	KindCutFromPat:         true,
	KindCutFromPatToPat:    true,
	KindCutFromPatToOffset: true,
	KindCutUntilPat:        true,
	KindCutFromPatToIndex:  true,
	KindCutFromIndexToPat:  true,
	KindTrimFromPat:        true,
	KindTrimFromPatToPat:   true,
	KindTrimUntilPat:       true,
	KindTrimToPat:          true,
	KindTrimFromPatToIndex: true,
	KindTrimFromIndexToPat: true,
	KindReplace:            true,
	KindRemove:             true,
}

func (o Operation) validate() error {
	if patternKinds[o.kind] && o.pattern == "" {
		return fmt.Errorf("%s: pattern must not be empty", o.kind)
	}
	if (o.kind == KindCutFromPatToPat || o.kind == KindTrimFromPatToPat) && o.end == "" {
		return fmt.Errorf("%s: end pattern must not be empty", o.kind)
	}
	if o.kind == KindSplitAtChar && o.char == 0 {
		return fmt.Errorf("%s: separator character must not be empty", o.kind)
	}
	return nil
}
