package span

import "testing"

func TestRange(t *testing.T) {
	r := Range{2, 5}
	if r.Len() != 3 {
		t.Errorf("Len = %d, want 3", r.Len())
	}
	if r.Empty() {
		t.Error("non-empty range reported empty")
	}
	if got := r.Of("hello!"); got != "llo" {
		t.Errorf("Of = %q", got)
	}
	if got := r.ExciseFrom("hello!"); got != "he!" {
		t.Errorf("ExciseFrom = %q", got)
	}

	empty := Range{3, 3}
	if !empty.Empty() {
		t.Error("zero-length range should be empty")
	}
	if got := empty.ExciseFrom("hello"); got != "hello" {
		t.Errorf("excising empty range changed input: %q", got)
	}
}

func TestOccurrences(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pattern string
		count   *int
		want    []int
	}{
		{"all", "banana", "a", nil, []int{1, 3, 5}},
		{"none selected", "banana", "a", count(0), nil},
		{"first two", "banana", "a", count(2), []int{1, 3}},
		{"last one", "banana", "a", count(-1), []int{5}},
		{"more than present", "banana", "a", count(9), []int{1, 3, 5}},
		{"absent", "banana", "x", nil, nil},
		{"non-overlapping scan", "aaaa", "aa", nil, []int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Occurrences(tt.input, tt.pattern, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("Occurrences = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Occurrences = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	bounds := &BoundsError{Pos: 12, Length: 5}
	if bounds.Error() == "" {
		t.Error("BoundsError message empty")
	}

	after := &OrderingError{Index: 2, Found: 5, Pattern: "x"}
	before := &OrderingError{Index: 5, Found: 2, Pattern: "x"}
	if after.Error() == before.Error() {
		t.Error("ordering messages should distinguish direction")
	}

	inverted := &InvertedRangeError{Start: 4, End: 1}
	if inverted.Error() == "" {
		t.Error("InvertedRangeError message empty")
	}
}
