// Package filter removes lines from a text file by their position. It knows
// nothing about file syntax: a line is kept or dropped solely because of its
// 1-based number.
package filter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"linecut/ranges"
)

// Result describes a single filter run.
type Result struct {
	Input  string
	Output string
	// Total number of lines in the input.
	Total int
	// Kept lines written to the output.
	Kept int
	// Dropped lines actually removed from this input.
	Dropped int
	// Removed is the size of the skip set. It is what gets reported to the
	// user and may exceed Dropped when ranges reach past the end of file.
	Removed int
}

// SplitLines splits data after every '\n'. Line terminators stay with their
// lines untouched ("\r\n" included), last line may have no terminator.
// A lone '\r' does not end a line, so classic Mac files are a single line.
func SplitLines(data []byte) [][]byte {
	var lines [][]byte
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, data)
			break
		}
		lines = append(lines, data[:i+1])
		data = data[i+1:]
	}
	return lines
}

// Apply returns lines whose 1-based positions are not in set, in original
// order, and number of lines dropped.
func Apply(lines [][]byte, set ranges.Set) ([][]byte, int) {
	kept := make([][]byte, 0, len(lines))
	for i, line := range lines {
		if set.Contains(i + 1) {
			continue
		}
		kept = append(kept, line)
	}
	return kept, len(lines) - len(kept)
}

// Lines filters text held in memory and returns retained content along with
// line statistics. Output and Input of the result are left empty.
func Lines(data []byte, set ranges.Set) ([]byte, Result) {
	lines := SplitLines(data)
	kept, dropped := Apply(lines, set)
	return bytes.Join(kept, nil), Result{
		Total:   len(lines),
		Kept:    len(kept),
		Dropped: dropped,
		Removed: set.Len(),
	}
}

// Filter is the file level line remover.
type Filter struct {
	codec *codec
	log   *zap.Logger
}

// New creates filter for files in the named character set, empty charset means
// UTF-8.
func New(charset string, log *zap.Logger) (*Filter, error) {
	c, err := newCodec(charset)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Filter{codec: c, log: log}, nil
}

// Charset returns name of the character set filter is using.
func (f *Filter) Charset() string {
	return f.codec.name
}

// Run reads input completely, removes every line covered by rs and writes the
// rest to output. Output is created or truncated, nothing is backed up. Any
// failure is returned as is, partially written output is left in place.
func (f *Filter) Run(ctx context.Context, input, output string, rs []ranges.Range) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	raw, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}
	text, err := f.codec.decode(raw, input)
	if err != nil {
		return nil, err
	}

	set := ranges.NewSet(rs...)
	data, res := Lines(text, set)
	res.Input, res.Output = input, output

	if data, err = f.codec.encode(data); err != nil {
		return nil, fmt.Errorf("unable to encode output (%s): %w", f.codec.name, err)
	}
	if err := writeFile(output, data); err != nil {
		return nil, fmt.Errorf("unable to write output: %w", err)
	}

	f.log.Debug("Lines filtered",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("total", res.Total),
		zap.Int("kept", res.Kept),
		zap.Int("dropped", res.Dropped),
		zap.Int("skip_set", res.Removed),
		zap.Duration("elapsed", time.Since(start)))
	if res.Dropped != res.Removed {
		f.log.Debug("Skip ranges reach past end of input", zap.Int("lines", res.Total), zap.Int("not_present", res.Removed-res.Dropped))
	}
	return &res, nil
}

func writeFile(name string, data []byte) (err error) {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	_, err = out.Write(data)
	return err
}
