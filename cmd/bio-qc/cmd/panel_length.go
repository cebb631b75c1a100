package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioqc/interval"
	"v.io/x/lib/cmdline"
)

func panelLength(ctx context.Context, w io.Writer, path string, opts interval.PanelLengthOpts) error {
	idx, err := interval.NewRegionIndexFromPath(ctx, path)
	if err != nil {
		return err
	}
	return interval.WritePanelLengths(w, interval.PanelLengths(idx), opts)
}

func newCmdPanelLength() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "panel-length",
		Short:    "Print the length distribution of the regions of a panel",
		ArgsName: "regions",
		ArgsLong: "regions is a .bed or .interval file.",
	}
	opts := interval.DefaultPanelLengthOpts
	cmd.Flags.StringVar(&opts.Format, "format", opts.Format, "Output format, 'table' or 'csv'")
	cmd.Flags.Float64Var(&opts.LowBound, "low-bound", opts.LowBound,
		"Stop after the first length whose cumulative fraction exceeds this value")
	cmd.Flags.IntVar(&opts.Query, "query", opts.Query,
		"If >= 0, print only the fraction of regions at least this long")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return env.UsageErrorf("panel-length takes one region file, but got %v", argv)
		}
		if err := panelLength(vcontext.Background(), env.Stdout, argv[0], opts); err != nil {
			return fmt.Errorf("panel-length: %v", err)
		}
		return nil
	})
	return cmd
}
