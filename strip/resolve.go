package strip

import (
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"linecut/config"
	"linecut/ranges"
)

// Source of skip ranges, command line takes precedence over configuration for
// preset and range file, individual ranges are combined.
type Source struct {
	Preset     string
	RangesFile string
	Ranges     []string
}

func sourceFromCommand(cmd *cli.Command, cfg *config.FilterConfig) Source {
	src := Source{
		Preset:     cfg.Preset,
		RangesFile: cfg.RangesFile,
		Ranges:     cmd.StringSlice("range"),
	}
	if cmd.IsSet("preset") {
		src.Preset = cmd.String("preset")
	}
	if cmd.IsSet("ranges-file") {
		src.RangesFile = cmd.String("ranges-file")
	}
	return src
}

// Resolve produces final ordered list of skip ranges: preset first, then
// ranges from configuration, then range file, then command line.
func Resolve(src Source, cfg *config.FilterConfig, log *zap.Logger) ([]ranges.Range, error) {
	var rs []ranges.Range

	if name := strings.TrimSpace(src.Preset); len(name) > 0 {
		p, err := ranges.Preset(name)
		if err != nil {
			return nil, err
		}
		log.Debug("Using preset", zap.String("preset", name), zap.Int("ranges", len(p)))
		rs = append(rs, p...)
	}

	if cfg != nil && len(cfg.Ranges) > 0 {
		log.Debug("Using configured ranges", zap.Int("ranges", len(cfg.Ranges)))
		rs = append(rs, cfg.Ranges...)
	}

	if len(src.RangesFile) > 0 {
		f, err := ranges.LoadFile(src.RangesFile)
		if err != nil {
			return nil, err
		}
		log.Debug("Using range file", zap.String("file", src.RangesFile), zap.Int("ranges", len(f)))
		rs = append(rs, f...)
	}

	if len(src.Ranges) > 0 {
		c, err := ranges.ParseAll(src.Ranges)
		if err != nil {
			return nil, fmt.Errorf("unable to parse --range: %w", err)
		}
		rs = append(rs, c...)
	}

	if len(rs) == 0 {
		return nil, errNoRanges
	}
	return rs, nil
}

func describe(rs []ranges.Range) []byte {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
