package ranges

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclRangeFile represents the top-level structure of a range file for decoding:
//
//	range "toast notification animations" {
//	  start = 5412
//	  end   = 5584
//	}
type hclRangeFile struct {
	Ranges []*hclRange `hcl:"range,block"`
}

type hclRange struct {
	Name  string `hcl:"name,label"`
	Start int    `hcl:"start"`
	End   *int   `hcl:"end,optional"`
}

// LoadFile reads declarative range file (HCL). Ranges are returned in the
// order they are declared, a block without "end" covers a single line.
func LoadFile(path string) ([]Range, error) {
	// read it ourselves so missing file is reported as fs.ErrNotExist
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read range file: %w", err)
	}
	return parseFile(data, path)
}

func parseFile(data []byte, path string) ([]Range, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse range file %s: %w", path, diags)
	}

	var parsed hclRangeFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode range file %s: %w", path, diags)
	}

	rs := make([]Range, 0, len(parsed.Ranges))
	for _, b := range parsed.Ranges {
		r := Range{Name: b.Name, Start: b.Start, End: b.Start}
		if b.End != nil {
			r.End = *b.End
		}
		if r.Start < 1 || r.End < 1 {
			return nil, fmt.Errorf("range %q in %s: line numbers start at 1", b.Name, path)
		}
		rs = append(rs, r)
	}
	return rs, nil
}
