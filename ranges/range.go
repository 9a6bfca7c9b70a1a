// Package ranges describes which lines of a file are to be removed: inclusive
// 1-indexed skip ranges and the set of line numbers they cover.
package ranges

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive pair of 1-indexed line numbers. Name is an optional
// human readable label.
type Range struct {
	Name  string `yaml:"name,omitempty"`
	Start int    `yaml:"start" validate:"min=1"`
	End   int    `yaml:"end" validate:"min=1"`
}

// Lines returns number of line positions covered by the range. Range with
// Start past End covers nothing.
func (r Range) Lines() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

func (r Range) String() string {
	if len(r.Name) == 0 {
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
	return fmt.Sprintf("%d-%d %s", r.Start, r.End, r.Name)
}

// Set is a union of line numbers covered by one or more ranges.
type Set map[int]struct{}

// NewSet builds set from all ranges. Overlapping ranges are absorbed.
func NewSet(rs ...Range) Set {
	s := make(Set)
	for _, r := range rs {
		s.Add(r)
	}
	return s
}

// Add puts every line number of r into the set.
func (s Set) Add(r Range) {
	if r.Start > r.End {
		return
	}
	// End may be math.MaxInt, n must not step past it
	for n := r.Start; ; n++ {
		s[n] = struct{}{}
		if n == r.End {
			break
		}
	}
}

func (s Set) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

// Len returns number of distinct line numbers in the set regardless of how
// many lines any particular file has.
func (s Set) Len() int {
	return len(s)
}

// Parse reads range from command line notation: "N", "N-M" or "N:M",
// optionally prefixed with a name, e.g. "toast=5412-5584".
func Parse(s string) (Range, error) {
	var r Range

	spec := strings.TrimSpace(s)
	if name, rest, found := strings.Cut(spec, "="); found {
		r.Name = strings.TrimSpace(name)
		spec = strings.TrimSpace(rest)
	}
	if len(spec) == 0 {
		return r, fmt.Errorf("empty range specification %q", s)
	}

	from, to, found := strings.Cut(spec, "-")
	if !found {
		from, to, found = strings.Cut(spec, ":")
	}
	if !found {
		to = from
	}

	var err error
	if r.Start, err = parseLine(from); err != nil {
		return r, fmt.Errorf("bad range start in %q: %w", s, err)
	}
	if r.End, err = parseLine(to); err != nil {
		return r, fmt.Errorf("bad range end in %q: %w", s, err)
	}
	return r, nil
}

func parseLine(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("line numbers start at 1, got %d", n)
	}
	return n, nil
}

// ParseAll parses every specification in order.
func ParseAll(specs []string) ([]Range, error) {
	rs := make([]Range, 0, len(specs))
	for _, s := range specs {
		r, err := Parse(s)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}

// Total returns combined number of lines covered by rs, counting overlaps once.
func Total(rs []Range) int {
	return NewSet(rs...).Len()
}
