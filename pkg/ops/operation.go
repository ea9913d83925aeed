// Package ops defines the closed set of line operations and dispatches each
// to its span resolver.
//
// An Operation is immutable once constructed: the caller builds one with the
// typed constructors and re-applies it to every input line. The default
// operation, used when a caller specifies nothing, is SplitAtWhitespace with
// no count.
package ops

import (
	"fmt"
	"sort"
)

// Kind identifies one operation variant. The set is closed: Apply switches
// exhaustively over it, so a new Kind cannot be added without handling it.
type Kind int

const (
	// Pattern-based.
	KindSplitAtWhitespace Kind = iota
	KindSplitAtPat
	KindSplitAtChar
	KindCutFromPat
	KindCutFromPatToPat
	KindCutFromPatToOffset
	KindCutUntilPat
	KindTrimFromPat
	KindTrimFromPatToPat
	KindTrimUntilPat
	KindTrimToPat
	KindTrim
	KindReplace
	KindRemove

	// Index-based.
	KindSplitAtIndex
	KindCutFromIndex
	KindCutFromIndexToIndex
	KindCutFromIndexToOffset
	KindCutUntilIndex
	KindTrimFromIndex
	KindTrimFromIndexToIndex
	KindTrimFromIndexToOffset
	KindTrimUntilIndex

	// Mixed pattern/index.
	KindCutFromPatToIndex
	KindCutFromIndexToPat
	KindTrimFromPatToIndex
	KindTrimFromIndexToPat
)

// kindNames maps each Kind to its kebab-case name, shared by the CLI
// subcommands and the preset files.
var kindNames = map[Kind]string{
	KindSplitAtWhitespace:     "split-at-whitespace",
	KindSplitAtPat:            "split-at-pat",
	KindSplitAtChar:           "split-at-char",
	KindSplitAtIndex:          "split-at-index",
	KindCutFromPat:            "cut-from-pat",
	KindCutFromPatToPat:       "cut-from-pat-to-pat",
	KindCutFromPatToOffset:    "cut-from-pat-to-offset",
	KindCutUntilPat:           "cut-until-pat",
	KindCutFromIndex:          "cut-from-index",
	KindCutFromIndexToIndex:   "cut-from-index-to-index",
	KindCutFromIndexToOffset:  "cut-from-index-to-offset",
	KindCutUntilIndex:         "cut-until-index",
	KindCutFromPatToIndex:     "cut-from-pat-to-index",
	KindCutFromIndexToPat:     "cut-from-index-to-pat",
	KindTrim:                  "trim",
	KindTrimFromPat:           "trim-from-pat",
	KindTrimFromPatToPat:      "trim-from-pat-to-pat",
	KindTrimUntilPat:          "trim-until-pat",
	KindTrimToPat:             "trim-to-pat",
	KindTrimFromIndex:         "trim-from-index",
	KindTrimFromIndexToIndex:  "trim-from-index-to-index",
	KindTrimFromIndexToOffset: "trim-from-index-to-offset",
	KindTrimUntilIndex:        "trim-until-index",
	KindTrimFromPatToIndex:    "trim-from-pat-to-index",
	KindTrimFromIndexToPat:    "trim-from-index-to-pat",
	KindReplace:               "replace",
	KindRemove:                "remove",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kebab-case operation name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}

// KindNames returns the names of all operations, sorted.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for _, n := range kindNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Operation is one immutable line operation: a Kind plus the parameters
// that kind requires. Build one with the constructors below; the zero value
// is the default whitespace split.
type Operation struct {
	kind    Kind
	pattern string // primary (or start) pattern; empty for Trim means whitespace
	end     string // end pattern for *-to-pat variants
	with    string // replacement text for Replace
	char    rune   // separator for SplitAtChar
	index   int    // primary (or start) index
	end2    int    // end index for *-to-index range variants
	offset  int    // signed byte offset for *-to-offset variants
	count   *int   // optional count; nil means "all"
}

// Kind returns the operation's variant tag.
func (o Operation) Kind() Kind { return o.kind }

// Count returns a pointer to n, for building optional counts inline.
func Count(n int) *int { return &n }

// Default returns the operation used when none is specified: a whitespace
// split with no count.
func Default() Operation { return SplitAtWhitespace(nil) }

// SplitAtWhitespace splits each line at runs of whitespace, optionally a
// finite number of times (negative counts select trailing tokens).
func SplitAtWhitespace(count *int) Operation {
	return Operation{kind: KindSplitAtWhitespace, count: count}
}

// SplitAtPat splits each line at a literal pattern, optionally a finite
// number of times (negative counts split from the end).
func SplitAtPat(pattern string, count *int) Operation {
	return Operation{kind: KindSplitAtPat, pattern: pattern, count: count}
}

// SplitAtChar splits each line at a single character, optionally a finite
// number of times (negative counts split from the end).
func SplitAtChar(c rune, count *int) Operation {
	return Operation{kind: KindSplitAtChar, char: c, count: count}
}

// SplitAtIndex splits each line into two segments at a byte offset.
func SplitAtIndex(index int) Operation {
	return Operation{kind: KindSplitAtIndex, index: index}
}

// CutFromPat retains from the first occurrence of pattern to end of line.
func CutFromPat(pattern string) Operation {
	return Operation{kind: KindCutFromPat, pattern: pattern}
}

// CutFromPatToPat retains from the first occurrence of start to the last
// occurrence of end.
func CutFromPatToPat(start, end string) Operation {
	return Operation{kind: KindCutFromPatToPat, pattern: start, end: end}
}

// CutFromPatToOffset retains offset bytes anchored at the first occurrence
// of pattern; negative offsets cover the bytes before the anchor.
func CutFromPatToOffset(pattern string, offset int) Operation {
	return Operation{kind: KindCutFromPatToOffset, pattern: pattern, offset: offset}
}

// CutUntilPat retains from start of line up to the first occurrence of
// pattern.
func CutUntilPat(pattern string) Operation {
	return Operation{kind: KindCutUntilPat, pattern: pattern}
}

// CutFromIndex retains from a byte offset to end of line.
func CutFromIndex(index int) Operation {
	return Operation{kind: KindCutFromIndex, index: index}
}

// CutFromIndexToIndex retains the range [start, end).
func CutFromIndexToIndex(start, end int) Operation {
	return Operation{kind: KindCutFromIndexToIndex, index: start, end2: end}
}

// CutFromIndexToOffset retains offset bytes anchored at index; negative
// offsets cover the bytes before the index.
func CutFromIndexToOffset(index, offset int) Operation {
	return Operation{kind: KindCutFromIndexToOffset, index: index, offset: offset}
}

// CutUntilIndex retains the first index bytes; index zero retains the whole
// line.
func CutUntilIndex(index int) Operation {
	return Operation{kind: KindCutUntilIndex, index: index}
}

// CutFromPatToIndex retains from the first occurrence of pattern up to
// index.
func CutFromPatToIndex(pattern string, index int) Operation {
	return Operation{kind: KindCutFromPatToIndex, pattern: pattern, index: index}
}

// CutFromIndexToPat retains from index up to the first occurrence of
// pattern.
func CutFromIndexToPat(index int, pattern string) Operation {
	return Operation{kind: KindCutFromIndexToPat, pattern: pattern, index: index}
}

// Trim strips leading and trailing whitespace, or leading and trailing
// occurrences of pattern when one is given (empty pattern means
// whitespace).
func Trim(pattern string) Operation {
	return Operation{kind: KindTrim, pattern: pattern}
}

// TrimFromPat removes from the first occurrence of pattern to end of line.
func TrimFromPat(pattern string) Operation {
	return Operation{kind: KindTrimFromPat, pattern: pattern}
}

// TrimFromPatToPat removes between the first occurrence of start and the
// last occurrence of end.
func TrimFromPatToPat(start, end string) Operation {
	return Operation{kind: KindTrimFromPatToPat, pattern: start, end: end}
}

// TrimUntilPat removes from start of line up to the first occurrence of
// pattern.
func TrimUntilPat(pattern string) Operation {
	return Operation{kind: KindTrimUntilPat, pattern: pattern}
}

// TrimToPat removes from start of line through the first occurrence of
// pattern, pattern included.
func TrimToPat(pattern string) Operation {
	return Operation{kind: KindTrimToPat, pattern: pattern}
}

// TrimFromIndex removes from a byte offset to end of line; index zero
// removes nothing.
func TrimFromIndex(index int) Operation {
	return Operation{kind: KindTrimFromIndex, index: index}
}

// TrimFromIndexToIndex removes the range [start, end); an inverted range
// removes nothing.
func TrimFromIndexToIndex(start, end int) Operation {
	return Operation{kind: KindTrimFromIndexToIndex, index: start, end2: end}
}

// TrimFromIndexToOffset removes offset bytes anchored at index; negative
// offsets cover the bytes before the index.
func TrimFromIndexToOffset(index, offset int) Operation {
	return Operation{kind: KindTrimFromIndexToOffset, index: index, offset: offset}
}

// TrimUntilIndex removes the first index bytes.
func TrimUntilIndex(index int) Operation {
	return Operation{kind: KindTrimUntilIndex, index: index}
}

// TrimFromPatToIndex removes from the first occurrence of pattern up to
// index.
func TrimFromPatToIndex(pattern string, index int) Operation {
	return Operation{kind: KindTrimFromPatToIndex, pattern: pattern, index: index}
}

// TrimFromIndexToPat removes from index up to the first occurrence of
// pattern.
func TrimFromIndexToPat(index int, pattern string) Operation {
	return Operation{kind: KindTrimFromIndexToPat, pattern: pattern, index: index}
}

// Replace substitutes occurrences of pattern with a replacement string:
// all of them, the first count, or the last |count| when count is negative.
func Replace(pattern, with string, count *int) Operation {
	return Operation{kind: KindReplace, pattern: pattern, with: with, count: count}
}

// Remove deletes occurrences of pattern; it is Replace with an empty
// replacement.
func Remove(pattern string, count *int) Operation {
	return Operation{kind: KindRemove, pattern: pattern, count: count}
}
