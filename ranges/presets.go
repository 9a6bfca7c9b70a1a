package ranges

import (
	"fmt"
	"slices"
	"strings"
)

// Curated lists for the globals.css stylesheet. Line numbers are only
// meaningful for the exact revision of the file they were taken from.
var presets = map[string][]Range{
	"animations": {
		{Name: "animation timing variables", Start: 56, End: 61},
		{Name: "animation classes and keyframes", Start: 420, End: 652},
		{Name: "focus-visible animation", Start: 654, End: 659},
		{Name: "smooth scroll behavior", Start: 661, End: 664},
		{Name: "3D car card animations", Start: 1030, End: 1152},
		{Name: "glassmorphic animations", Start: 1263, End: 1539},
		{Name: "verified badge animations", Start: 1628, End: 1710},
		{Name: "featured ribbon animations", Start: 1714, End: 1802},
		{Name: "toast notification animations", Start: 5412, End: 5584},
		{Name: "loading screen animations", Start: 5589, End: 5850},
	},
	// same regions, leading line of every block is kept
	"animations-tight": {
		{Name: "animation timing variables", Start: 57, End: 61},
		{Name: "animation classes and keyframes", Start: 421, End: 652},
		{Name: "focus-visible animation", Start: 655, End: 659},
		{Name: "smooth scroll behavior", Start: 662, End: 664},
		{Name: "3D car card animations", Start: 1031, End: 1152},
		{Name: "glassmorphic animations", Start: 1264, End: 1539},
		{Name: "verified badge animations", Start: 1629, End: 1710},
		{Name: "featured ribbon animations", Start: 1715, End: 1802},
		{Name: "toast notification animations", Start: 5413, End: 5584},
		{Name: "loading screen animations", Start: 5590, End: 5850},
	},
}

// Preset returns copy of the named built-in range list.
func Preset(name string) ([]Range, error) {
	rs, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (known presets: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return slices.Clone(rs), nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
