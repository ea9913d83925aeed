package preset

import (
	"testing"
	"testing/fstest"

	"github.com/praetorian-inc/snip/pkg/ops"
)

func TestLoadBuiltin(t *testing.T) {
	presets, err := NewLoader().LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin failed: %v", err)
	}
	if len(presets) == 0 {
		t.Fatal("expected builtin presets")
	}

	fields := Find(presets, "fields")
	if fields == nil {
		t.Fatal("builtin preset 'fields' missing")
	}
	if fields.Operation.Kind() != ops.KindSplitAtWhitespace {
		t.Errorf("'fields' kind = %v", fields.Operation.Kind())
	}

	// Every builtin preset must produce a working operation.
	for _, p := range presets {
		if p.Description == "" {
			t.Errorf("preset %q has no description", p.Name)
		}
		if _, err := ops.Apply(p.Operation, "sample = line # note"); err != nil {
			t.Errorf("preset %q does not apply cleanly: %v", p.Name, err)
		}
	}
}

func TestLoadValid(t *testing.T) {
	validYAML := `presets:
  - name: brackets
    description: Keep the bracketed section
    op: cut-from-pat-to-pat
    pattern: "["
    end: "]"
  - name: drop-last
    op: replace
    pattern: ","
    with: ";"
    count: -1
`

	presets, err := NewLoader().Load([]byte(validYAML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}

	out, err := ops.Apply(presets[0].Operation, "a [b] c")
	if err != nil {
		t.Fatalf("applying 'brackets' failed: %v", err)
	}
	if got := out.Render(); got != "[b" {
		t.Errorf("'brackets' on \"a [b] c\" = %q", got)
	}

	out, err = ops.Apply(presets[1].Operation, "a,b,c")
	if err != nil {
		t.Fatalf("applying 'drop-last' failed: %v", err)
	}
	if got := out.Render(); got != "a,b;c" {
		t.Errorf("'drop-last' on \"a,b,c\" = %q", got)
	}
}

func TestLoadRejectsBadPresets(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", `presets: [[[`},
		{"empty file", `presets: []`},
		{"unknown op", "presets:\n  - name: x\n    op: no-such-op\n"},
		{"missing name", "presets:\n  - op: trim\n"},
		{"missing pattern", "presets:\n  - name: x\n    op: cut-from-pat\n"},
		{"missing end pattern", "presets:\n  - name: x\n    op: cut-from-pat-to-pat\n    pattern: '['\n"},
		{"missing index", "presets:\n  - name: x\n    op: split-at-index\n"},
		{"negative index", "presets:\n  - name: x\n    op: split-at-index\n    index: -1\n"},
		{"missing offset", "presets:\n  - name: x\n    op: cut-from-pat-to-offset\n    pattern: y\n"},
		{"multi-char char", "presets:\n  - name: x\n    op: split-at-char\n    char: ab\n"},
	}

	loader := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.Load([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadBuiltinWithCustomFS(t *testing.T) {
	fsys := fstest.MapFS{
		"presets/custom.yml": &fstest.MapFile{
			Data: []byte("presets:\n  - name: zz\n    description: d\n    op: trim\n  - name: aa\n    description: d\n    op: trim\n"),
		},
	}

	presets, err := NewLoaderWithFS(fsys).LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin failed: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}
	// Sorted by name.
	if presets[0].Name != "aa" || presets[1].Name != "zz" {
		t.Errorf("presets not sorted: %q, %q", presets[0].Name, presets[1].Name)
	}
}

func TestFind(t *testing.T) {
	presets := []*Preset{{Name: "a"}, {Name: "b"}}
	if Find(presets, "b") == nil {
		t.Error("Find missed an existing preset")
	}
	if Find(presets, "c") != nil {
		t.Error("Find returned a preset for an unknown name")
	}
}
