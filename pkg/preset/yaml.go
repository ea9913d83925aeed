package preset

import (
	"fmt"
	"unicode/utf8"

	"github.com/praetorian-inc/snip/pkg/ops"
)

// yamlPreset is the intermediate struct for one preset definition. Only the
// fields the named operation needs are set; convertYAMLPreset enforces
// that the required ones are present.
type yamlPreset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Op          string `yaml:"op"`
	Pattern     string `yaml:"pattern,omitempty"`
	End         string `yaml:"end,omitempty"`
	With        string `yaml:"with,omitempty"`
	Char        string `yaml:"char,omitempty"`
	Index       *int   `yaml:"index,omitempty"`
	EndIndex    *int   `yaml:"end_index,omitempty"`
	Offset      *int   `yaml:"offset,omitempty"`
	Count       *int   `yaml:"count,omitempty"`
}

// yamlPresetsFile is the top-level structure of a presets YAML file: a
// "presets" array.
type yamlPresetsFile struct {
	Presets []yamlPreset `yaml:"presets"`
}

// convertYAMLPreset assembles the operation a preset names, validating the
// parameters its kind requires.
func convertYAMLPreset(yp yamlPreset) (*Preset, error) {
	if yp.Name == "" {
		return nil, fmt.Errorf("preset without a name")
	}

	kind, err := ops.ParseKind(yp.Op)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", yp.Name, err)
	}

	op, err := buildOperation(kind, yp)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", yp.Name, err)
	}

	return &Preset{
		Name:        yp.Name,
		Description: yp.Description,
		Operation:   op,
	}, nil
}

func buildOperation(kind ops.Kind, yp yamlPreset) (ops.Operation, error) {
	var zero ops.Operation

	pattern := func() (string, error) {
		if yp.Pattern == "" {
			return "", fmt.Errorf("%s requires a pattern", kind)
		}
		return yp.Pattern, nil
	}
	index := func(p *int, field string) (int, error) {
		if p == nil {
			return 0, fmt.Errorf("%s requires %s", kind, field)
		}
		if *p < 0 {
			return 0, fmt.Errorf("%s: %s must not be negative", kind, field)
		}
		return *p, nil
	}
	offset := func() (int, error) {
		if yp.Offset == nil {
			return 0, fmt.Errorf("%s requires an offset", kind)
		}
		return *yp.Offset, nil
	}
	endPattern := func() (string, error) {
		if yp.End == "" {
			return "", fmt.Errorf("%s requires an end pattern", kind)
		}
		return yp.End, nil
	}

	switch kind {
	case ops.KindSplitAtWhitespace:
		return ops.SplitAtWhitespace(yp.Count), nil
	case ops.KindSplitAtPat:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.SplitAtPat(p, yp.Count), nil
	case ops.KindSplitAtChar:
		c, n := utf8.DecodeRuneInString(yp.Char)
		if yp.Char == "" || n != len(yp.Char) {
			return zero, fmt.Errorf("%s requires a single character, got %q", kind, yp.Char)
		}
		return ops.SplitAtChar(c, yp.Count), nil
	case ops.KindSplitAtIndex:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		return ops.SplitAtIndex(i), nil

	case ops.KindCutFromPat:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.CutFromPat(p), nil
	case ops.KindCutFromPatToPat:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		e, err := endPattern()
		if err != nil {
			return zero, err
		}
		return ops.CutFromPatToPat(p, e), nil
	case ops.KindCutFromPatToOffset:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		off, err := offset()
		if err != nil {
			return zero, err
		}
		return ops.CutFromPatToOffset(p, off), nil
	case ops.KindCutUntilPat:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.CutUntilPat(p), nil
	case ops.KindCutFromIndex:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		return ops.CutFromIndex(i), nil
	case ops.KindCutFromIndexToIndex:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		e, err := index(yp.EndIndex, "an end index")
		if err != nil {
			return zero, err
		}
		return ops.CutFromIndexToIndex(i, e), nil
	case ops.KindCutFromIndexToOffset:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		off, err := offset()
		if err != nil {
			return zero, err
		}
		return ops.CutFromIndexToOffset(i, off), nil
	case ops.KindCutUntilIndex:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		return ops.CutUntilIndex(i), nil
	case ops.KindCutFromPatToIndex:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		return ops.CutFromPatToIndex(p, i), nil
	case ops.KindCutFromIndexToPat:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.CutFromIndexToPat(i, p), nil

	case ops.KindTrim:
		return ops.Trim(yp.Pattern), nil
	case ops.KindTrimFromPat:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.TrimFromPat(p), nil
	case ops.KindTrimFromPatToPat:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		e, err := endPattern()
		if err != nil {
			return zero, err
		}
		return ops.TrimFromPatToPat(p, e), nil
	case ops.KindTrimUntilPat:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.TrimUntilPat(p), nil
	case ops.KindTrimToPat:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.TrimToPat(p), nil
	case ops.KindTrimFromIndex:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		return ops.TrimFromIndex(i), nil
	case ops.KindTrimFromIndexToIndex:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		e, err := index(yp.EndIndex, "an end index")
		if err != nil {
			return zero, err
		}
		return ops.TrimFromIndexToIndex(i, e), nil
	case ops.KindTrimFromIndexToOffset:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		off, err := offset()
		if err != nil {
			return zero, err
		}
		return ops.TrimFromIndexToOffset(i, off), nil
	case ops.KindTrimUntilIndex:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		return ops.TrimUntilIndex(i), nil
	case ops.KindTrimFromPatToIndex:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		return ops.TrimFromPatToIndex(p, i), nil
	case ops.KindTrimFromIndexToPat:
		i, err := index(yp.Index, "an index")
		if err != nil {
			return zero, err
		}
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.TrimFromIndexToPat(i, p), nil

	case ops.KindReplace:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.Replace(p, yp.With, yp.Count), nil
	case ops.KindRemove:
		p, err := pattern()
		if err != nil {
			return zero, err
		}
		return ops.Remove(p, yp.Count), nil
	}

	return zero, fmt.Errorf("unhandled operation kind %v", kind)
}
