// Package stream applies one operation to each line of an input stream.
package stream

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/praetorian-inc/snip/pkg/ops"
)

// maxLineSize bounds a single input line (1 MiB).
const maxLineSize = 1 << 20

// Processor streams lines through a single immutable operation. Lines are
// processed independently; there is no cross-line state.
type Processor struct {
	op ops.Operation
}

// New creates a processor for the given operation.
func New(op ops.Operation) *Processor {
	return &Processor{op: op}
}

// Run reads r line by line (trailing newline stripped), applies the
// operation, and writes each rendered result to w followed by a newline.
// Lines that are not valid UTF-8 are dropped rather than surfaced.
//
// The first resolver error aborts the run: output produced so far is
// flushed and the error is returned, annotated with the failing line
// number. There is no per-line recovery.
func (p *Processor) Run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	bw := bufio.NewWriter(w)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if !utf8.ValidString(line) {
			continue
		}

		out, err := ops.Apply(p.op, line)
		if err != nil {
			bw.Flush()
			return fmt.Errorf("line %d: %w", lineno, err)
		}

		if _, err := bw.WriteString(out.Render()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return bw.Flush()
}
