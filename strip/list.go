package strip

import (
	"context"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"

	"linecut/ranges"
	"linecut/state"
)

// List is the action of "ranges" command. It prints effective skip ranges
// without touching any file.
func List(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	w := stdout(cmd)

	if cmd.Bool("list-presets") {
		for _, name := range ranges.PresetNames() {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	}

	fcfg := env.Cfg.Filter
	rs, err := Resolve(sourceFromCommand(cmd, &fcfg), &fcfg, env.Log.Named("ranges"))
	if err != nil {
		return err
	}
	return printRanges(w, rs)
}

func printRanges(w io.Writer, rs []ranges.Range) error {
	if _, err := w.Write(describe(rs)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d ranges, %d distinct lines\n", len(rs), ranges.Total(rs))
	return err
}
