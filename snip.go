// Package snip provides line-oriented text transformation as a library.
//
// Snip applies one operation per transformer to each line it is given:
// splitting at patterns, characters or byte offsets, cutting and trimming
// spans, and replacing literal patterns. Patterns are literal substrings,
// never regular expressions, and all indices and offsets are byte offsets
// into the line.
//
// # Basic Usage
//
// Create a transformer with an operation and apply it line by line:
//
//	tf := snip.New(snip.CutUntilPat("="))
//
//	out, err := tf.Line("key=value")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // "key"
//
// # Streaming
//
// Transform a whole stream, one line at a time:
//
//	tf := snip.New(snip.SplitAtChar(',', snip.Count(1)))
//	if err := tf.Run(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Presets
//
// Named presets bind an operation and its parameters under a memorable
// name, loaded from YAML:
//
//	presets, err := snip.LoadBuiltinPresets()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if p := snip.FindPreset(presets, "fields"); p != nil {
//	    tf := snip.New(p.Operation)
//	    ...
//	}
package snip

import (
	"io"

	"github.com/praetorian-inc/snip/pkg/ops"
	"github.com/praetorian-inc/snip/pkg/preset"
	"github.com/praetorian-inc/snip/pkg/stream"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/praetorian-inc/snip" without subpackages.
type (
	// Operation is a single line transformation.
	Operation = ops.Operation

	// Output is the result of applying an operation to one line.
	Output = ops.Output

	// Kind identifies an operation variant.
	Kind = ops.Kind

	// Preset is a named, ready-to-apply operation.
	Preset = preset.Preset
)

// Count wraps a split or replace occurrence count. A nil count means
// unbounded.
func Count(n int) *int { return ops.Count(n) }

// Default returns the operation applied when none is specified: split at
// whitespace.
func Default() Operation { return ops.Default() }

// Re-export the operation constructors.
var (
	SplitAtWhitespace     = ops.SplitAtWhitespace
	SplitAtPat            = ops.SplitAtPat
	SplitAtChar           = ops.SplitAtChar
	SplitAtIndex          = ops.SplitAtIndex
	CutFromPat            = ops.CutFromPat
	CutFromPatToPat       = ops.CutFromPatToPat
	CutFromPatToOffset    = ops.CutFromPatToOffset
	CutUntilPat           = ops.CutUntilPat
	CutFromIndex          = ops.CutFromIndex
	CutFromIndexToIndex   = ops.CutFromIndexToIndex
	CutFromIndexToOffset  = ops.CutFromIndexToOffset
	CutUntilIndex         = ops.CutUntilIndex
	CutFromPatToIndex     = ops.CutFromPatToIndex
	CutFromIndexToPat     = ops.CutFromIndexToPat
	Trim                  = ops.Trim
	TrimFromPat           = ops.TrimFromPat
	TrimFromPatToPat      = ops.TrimFromPatToPat
	TrimUntilPat          = ops.TrimUntilPat
	TrimToPat             = ops.TrimToPat
	TrimFromIndex         = ops.TrimFromIndex
	TrimFromIndexToIndex  = ops.TrimFromIndexToIndex
	TrimFromIndexToOffset = ops.TrimFromIndexToOffset
	TrimUntilIndex        = ops.TrimUntilIndex
	TrimFromPatToIndex    = ops.TrimFromPatToIndex
	TrimFromIndexToPat    = ops.TrimFromIndexToPat
	Replace               = ops.Replace
	Remove                = ops.Remove
)

// Transformer applies one operation to lines of text.
type Transformer struct {
	op ops.Operation
}

// New creates a Transformer for the given operation.
//
// Example:
//
//	tf := snip.New(snip.TrimFromPat("#"))
func New(op Operation) *Transformer {
	return &Transformer{op: op}
}

// Apply transforms a single line and returns the structured output, which
// distinguishes a single result from the multiple segments of a split.
func (t *Transformer) Apply(line string) (Output, error) {
	return ops.Apply(t.op, line)
}

// Line transforms a single line and returns the rendered result. The
// segments of a split are newline-joined.
//
// Example:
//
//	out, err := tf.Line("a,b,c")
func (t *Transformer) Line(line string) (string, error) {
	out, err := ops.Apply(t.op, line)
	if err != nil {
		return "", err
	}
	return out.Render(), nil
}

// Run transforms every line read from r and writes the results to w.
// Lines that are not valid UTF-8 are dropped. Processing stops at the
// first resolver error, with output flushed up to the failing line.
func (t *Transformer) Run(r io.Reader, w io.Writer) error {
	return stream.New(t.op).Run(r, w)
}

// LoadBuiltinPresets returns the embedded named presets, sorted by name.
func LoadBuiltinPresets() ([]*Preset, error) {
	return preset.NewLoader().LoadBuiltin()
}

// LoadPresetsFromFile loads named presets from a YAML file.
//
// Example:
//
//	presets, err := snip.LoadPresetsFromFile("/path/to/presets.yml")
func LoadPresetsFromFile(path string) ([]*Preset, error) {
	return preset.NewLoader().LoadFile(path)
}

// FindPreset returns the preset with the given name, or nil.
func FindPreset(presets []*Preset, name string) *Preset {
	return preset.Find(presets, name)
}
