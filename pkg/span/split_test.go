package span

import (
	"strings"
	"testing"
)

// count returns a pointer to n for building optional counts in tables.
func count(n int) *int { return &n }

func materialize(s string, segs []Range) []string {
	out := make([]string, len(segs))
	for i, r := range segs {
		out[i] = r.Of(s)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSplitAtWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count *int
		want  []string
	}{
		{
			name:  "no count splits every run",
			input: "  a  b\tc ",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "empty input yields no tokens",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only yields no tokens",
			input: " \t ",
			want:  []string{},
		},
		{
			name:  "positive count keeps remainder as last segment",
			input: "a b c  d",
			count: count(2),
			want:  []string{"a", "b", "c  d"},
		},
		{
			name:  "positive count larger than token count",
			input: "a b",
			count: count(5),
			want:  []string{"a", "b"},
		},
		{
			name:  "positive count drops trailing whitespace from remainder",
			input: " a b c ",
			count: count(1),
			want:  []string{"a", "b c"},
		},
		{
			name:  "negative count yields last tokens reversed",
			input: "a b c d",
			count: count(-2),
			want:  []string{"d", "c"},
		},
		{
			name:  "negative count larger than token count",
			input: "a b",
			count: count(-5),
			want:  []string{"b", "a"},
		},
		{
			name:  "zero count leaves input whole",
			input: "a b c",
			count: count(0),
			want:  []string{"a b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := materialize(tt.input, SplitAtWhitespace(tt.input, tt.count))
			if !equalStrings(got, tt.want) {
				t.Errorf("SplitAtWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitAtPat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   string
		count *int
		want  []string
	}{
		{
			name:  "no count splits everywhere",
			input: "a::b::c",
			sep:   "::",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "separator absent",
			input: "abc",
			sep:   "::",
			want:  []string{"abc"},
		},
		{
			name:  "adjacent separators produce empty segments",
			input: "::a::",
			sep:   "::",
			want:  []string{"", "a", ""},
		},
		{
			name:  "positive count splits from the left",
			input: "a::b::c::d",
			sep:   "::",
			count: count(2),
			want:  []string{"a", "b", "c::d"},
		},
		{
			name:  "negative count splits from the right, remainder first",
			input: "a::b::c::d",
			sep:   "::",
			count: count(-2),
			want:  []string{"a::b", "c", "d"},
		},
		{
			name:  "zero count leaves input whole",
			input: "a::b",
			sep:   "::",
			count: count(0),
			want:  []string{"a::b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := materialize(tt.input, SplitAtPat(tt.input, tt.sep, tt.count))
			if !equalStrings(got, tt.want) {
				t.Errorf("SplitAtPat(%q, %q) = %q, want %q", tt.input, tt.sep, got, tt.want)
			}
		})
	}
}

// Joining an unbounded split with its separator must reproduce the input.
func TestSplitAtPatRoundTrip(t *testing.T) {
	inputs := []string{"", "a", "a,b", ",a,,b,", "x,,,,y"}
	for _, input := range inputs {
		segs := materialize(input, SplitAtPat(input, ",", nil))
		if got := strings.Join(segs, ","); got != input {
			t.Errorf("round trip of %q = %q", input, got)
		}
	}
}

func TestSplitAtIndex(t *testing.T) {
	segs, err := SplitAtIndex("hello", 2)
	if err != nil {
		t.Fatalf("SplitAtIndex failed: %v", err)
	}
	got := materialize("hello", segs)
	if !equalStrings(got, []string{"he", "llo"}) {
		t.Errorf("SplitAtIndex(hello, 2) = %q", got)
	}

	if _, err := SplitAtIndex("hello", 0); err != nil {
		t.Errorf("index 0 should be valid: %v", err)
	}
	if _, err := SplitAtIndex("hello", 5); err != nil {
		t.Errorf("index len(input) should be valid: %v", err)
	}
	if _, err := SplitAtIndex("hello", 6); err == nil {
		t.Error("expected bounds error for index past end")
	}
}

func TestTokens(t *testing.T) {
	toks := Tokens("  foo   bar ")
	got := materialize("  foo   bar ", toks)
	if !equalStrings(got, []string{"foo", "bar"}) {
		t.Errorf("Tokens = %q", got)
	}
}
