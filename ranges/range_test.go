package ranges

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestRange_Lines(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want int
	}{
		{"single line", Range{Start: 7, End: 7}, 1},
		{"several lines", Range{Start: 3, End: 5}, 3},
		{"reversed", Range{Start: 10, End: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Lines(); got != tt.want {
				t.Errorf("Lines() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewSet_Overlap(t *testing.T) {
	s := NewSet(Range{Start: 10, End: 20}, Range{Start: 15, End: 25})
	if s.Len() != 16 {
		t.Errorf("Len() = %d, want 16", s.Len())
	}
	for n := 10; n <= 25; n++ {
		if !s.Contains(n) {
			t.Errorf("expected line %d in set", n)
		}
	}
	if s.Contains(9) || s.Contains(26) {
		t.Error("set contains lines outside of ranges")
	}
}

func TestNewSet_ReversedRangeIsEmpty(t *testing.T) {
	s := NewSet(Range{Start: 5, End: 3})
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestNewSet_Empty(t *testing.T) {
	s := NewSet()
	if s.Len() != 0 || s.Contains(1) {
		t.Error("empty set is not empty")
	}
}

func TestNewSet_MaxInt(t *testing.T) {
	if strconv.IntSize != 64 {
		t.Skip("int is narrower than 64 bits")
	}
	r, err := Parse("9223372036854775806-9223372036854775807")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	s := NewSet(r, Range{Start: math.MaxInt, End: math.MaxInt})
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(math.MaxInt-1) || !s.Contains(math.MaxInt) {
		t.Error("set misses range ends")
	}
	if s.Contains(math.MinInt) {
		t.Error("set wrapped around past math.MaxInt")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Range
	}{
		{"3-5", Range{Start: 3, End: 5}},
		{"3:5", Range{Start: 3, End: 5}},
		{"42", Range{Start: 42, End: 42}},
		{" 8 - 9 ", Range{Start: 8, End: 9}},
		{"toast=5412-5584", Range{Name: "toast", Start: 5412, End: 5584}},
		{"9-2", Range{Start: 9, End: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "name=", "a-b", "0-4", "-5", "3-", "1-2-3"} {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); err == nil {
				t.Errorf("Parse(%q) expected error", in)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	rs, err := ParseAll([]string{"1-2", "5"})
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(rs) != 2 || rs[1].Start != 5 || rs[1].End != 5 {
		t.Errorf("ParseAll() = %+v", rs)
	}

	if _, err := ParseAll([]string{"1-2", "x"}); err == nil {
		t.Error("expected error for malformed range")
	}
}

func TestTotal(t *testing.T) {
	rs := []Range{{Start: 1, End: 3}, {Start: 2, End: 4}, {Start: 10, End: 9}}
	if got := Total(rs); got != 4 {
		t.Errorf("Total() = %d, want 4", got)
	}
}

func TestPreset(t *testing.T) {
	rs, err := Preset("animations")
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}
	if len(rs) != 10 {
		t.Fatalf("animations preset has %d ranges, want 10", len(rs))
	}
	if rs[0].Start != 56 || rs[0].End != 61 {
		t.Errorf("first range = %v, want 56-61", rs[0])
	}
	if got := Total(rs); got != 1256 {
		t.Errorf("animations preset covers %d lines, want 1256", got)
	}

	// returned slice must not alias preset storage
	rs[0].Start = 1
	again, _ := Preset("Animations")
	if again[0].Start != 56 {
		t.Error("preset was modified through returned slice")
	}
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("transitions")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "animations") {
		t.Errorf("error should list known presets: %v", err)
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) != 2 || names[0] != "animations" || names[1] != "animations-tight" {
		t.Errorf("PresetNames() = %v", names)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranges.hcl")
	content := `
range "timing variables" {
  start = 56
  end   = 61
}

range "single" {
  start = 100
}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write range file: %v", err)
	}

	rs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	want := []Range{
		{Name: "timing variables", Start: 56, End: 61},
		{Name: "single", Start: 100, End: 100},
	}
	if len(rs) != len(want) {
		t.Fatalf("LoadFile() returned %d ranges, want %d", len(rs), len(want))
	}
	for i := range want {
		if rs[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, rs[i], want[i])
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.hcl"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":        `range "a" {`,
		"unknown attr":  "range \"a\" {\n  start = 1\n  stop = 2\n}\n",
		"missing start": "range \"a\" {\n  end = 2\n}\n",
		"zero line":     "range \"a\" {\n  start = 0\n}\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parseFile([]byte(content), "test.hcl"); err == nil {
				t.Error("expected error")
			}
		})
	}
}
