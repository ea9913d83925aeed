package ops

import (
	"errors"
	"testing"

	"github.com/praetorian-inc/snip/pkg/span"
)

func TestApplyDefault(t *testing.T) {
	out, err := Apply(Default(), "  one two  three ")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !out.IsMultiple() {
		t.Error("default split should produce a Multiple output")
	}
	if got := out.Render(); got != "one\ntwo\nthree" {
		t.Errorf("Render = %q", got)
	}
}

func TestApplySingleAndMultipleShapes(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		input    string
		want     string
		multiple bool
	}{
		{"split-at-pat", SplitAtPat("::", nil), "a::b", "a\nb", true},
		{"split-at-char", SplitAtChar(',', nil), "a,b,c", "a\nb\nc", true},
		{"split-at-char negative count", SplitAtChar(',', Count(-1)), "a,b,c", "a,b\nc", true},
		{"split-at-index", SplitAtIndex(2), "hello", "he\nllo", true},
		{"split count zero is a single unsplit unit", SplitAtPat(",", Count(0)), "a,b", "a,b", false},
		{"whitespace count zero", SplitAtWhitespace(Count(0)), "a b", "a b", false},
		{"cut-from-pat", CutFromPat("llo"), "hello world", "llo world", false},
		{"cut-from-pat absent", CutFromPat("llo"), "abc", "abc", false},
		{"cut-until-pat", CutUntilPat("="), "k=v", "k", false},
		{"cut-from-pat-to-pat", CutFromPatToPat("[", "]"), "a[b]c", "[b", false},
		{"cut-from-index", CutFromIndex(6), "hello world", "world", false},
		{"cut-until-index zero keeps line", CutUntilIndex(0), "hello", "hello", false},
		{"trim", Trim(""), "  hi  ", "hi", false},
		{"trim pattern", Trim("-"), "--hi--", "hi", false},
		{"trim-from-pat", TrimFromPat("#"), "code # note", "code ", false},
		{"trim-to-pat", TrimToPat(": "), "warn: boom", "boom", false},
		{"trim-from-index-to-index inverted", TrimFromIndexToIndex(3, 1), "hello", "hello", false},
		{"replace all", Replace("a", "b", nil), "banana", "bbnbnb", false},
		{"replace last", Replace("a", "b", Count(-1)), "banana", "bananb", false},
		{"replace first two", Replace("a", "o", Count(2)), "banana", "bonona", false},
		{"replace count zero", Replace("a", "b", Count(0)), "banana", "banana", false},
		{"remove", Remove("na", nil), "banana", "ba", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Apply(tt.op, tt.input)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if out.IsMultiple() != tt.multiple {
				t.Errorf("IsMultiple = %v, want %v", out.IsMultiple(), tt.multiple)
			}
			if got := out.Render(); got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyResolverErrors(t *testing.T) {
	var bounds *span.BoundsError
	_, err := Apply(CutFromPatToOffset("foo", 100), "foo bar")
	if !errors.As(err, &bounds) {
		t.Fatalf("expected BoundsError, got %v", err)
	}

	var ordering *span.OrderingError
	_, err = Apply(CutFromPatToIndex("bar", 1), "foo bar")
	if !errors.As(err, &ordering) {
		t.Fatalf("expected OrderingError, got %v", err)
	}

	_, err = Apply(SplitAtIndex(10), "short")
	if !errors.As(err, &bounds) {
		t.Fatalf("expected BoundsError from split-at-index, got %v", err)
	}
}

func TestApplyValidatesPatterns(t *testing.T) {
	for _, op := range []Operation{
		SplitAtPat("", nil),
		CutFromPat(""),
		CutFromPatToPat("[", ""),
		Replace("", "x", nil),
	} {
		if _, err := Apply(op, "line"); err == nil {
			t.Errorf("%s: expected validation error for empty pattern", op.Kind())
		}
	}

	// Trim's pattern is optional: empty means whitespace.
	if _, err := Apply(Trim(""), " x "); err != nil {
		t.Errorf("Trim with empty pattern should be valid: %v", err)
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	names := KindNames()
	if len(names) != len(kindNames) {
		t.Fatalf("KindNames returned %d names, want %d", len(names), len(kindNames))
	}
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", name, err)
		}
		if k.String() != name {
			t.Errorf("round trip of %q = %q", name, k.String())
		}
	}

	if _, err := ParseKind("no-such-op"); err == nil {
		t.Error("expected error for unknown operation name")
	}
}

func TestOutput(t *testing.T) {
	s := Single("x")
	if s.IsMultiple() {
		t.Error("Single reported multiple")
	}
	if len(s.Segments()) != 1 || s.Segments()[0] != "x" {
		t.Errorf("Segments = %v", s.Segments())
	}

	m := Multiple([]string{"a", "b"})
	if !m.IsMultiple() {
		t.Error("Multiple reported single")
	}
	if got := m.Render(); got != "a\nb" {
		t.Errorf("Render = %q", got)
	}

	empty := Multiple(nil)
	if got := empty.Render(); got != "" {
		t.Errorf("empty Multiple renders %q", got)
	}
}
