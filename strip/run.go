// Package strip implements commands which remove line ranges from a file and
// inspect what would be removed.
package strip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"linecut/filter"
	"linecut/ranges"
	"linecut/state"
)

var errNoRanges = errors.New("no skip ranges specified (use --preset, --range, --ranges-file or configuration)")

// Run is the action of "strip" command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("strip")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input file has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = defaultOutput(src)
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	fcfg := env.Cfg.Filter
	if cmd.IsSet("encoding") {
		fcfg.Encoding = cmd.String("encoding")
	}

	rs, err := Resolve(sourceFromCommand(cmd, &fcfg), &fcfg, log)
	if err != nil {
		return err
	}

	f, err := filter.New(fcfg.Encoding, log)
	if err != nil {
		return err
	}

	log.Info("Processing starting",
		zap.String("source", src), zap.String("destination", dst),
		zap.Int("ranges", len(rs)), zap.String("charset", f.Charset()), zap.Stringer("run", env.RunID))
	defer func(start time.Time) {
		if err == nil {
			log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	return process(ctx, f, src, dst, rs, fcfg.Label, stdout(cmd), log)
}

// process runs filter independently of CLI framework and prints completion
// status to w.
func process(ctx context.Context, f *filter.Filter, src, dst string, rs []ranges.Range, label string, w io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	if src == dst {
		log.Warn("Output is the same file as input, input will be replaced", zap.String("file", dst))
	} else if _, err := os.Stat(dst); err == nil {
		log.Warn("Overwriting existing file", zap.String("file", dst))
	}

	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("ranges-%s.txt", env.RunID), describe(rs))
		// input may be the output, keep its copy as it was
		if data, err := os.ReadFile(src); err == nil {
			env.Rpt.StoreData("input/"+filepath.Base(src), data)
		}
	}

	res, err := f.Run(ctx, src, dst, rs)
	if err != nil {
		return err
	}

	if env.Rpt != nil {
		env.Rpt.Store("output/"+filepath.Base(dst), dst)
	}

	if len(label) == 0 {
		label = "lines"
	}
	if _, err := fmt.Fprintf(w, "Removed %d %s\nOutput written to %s\n", res.Removed, label, res.Output); err != nil {
		return fmt.Errorf("unable to report results: %w", err)
	}
	return nil
}

// defaultOutput places result next to the source: globals.css -> globals_new.css
func defaultOutput(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + "_new" + ext
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
