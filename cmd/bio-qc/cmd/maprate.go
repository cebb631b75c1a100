package cmd

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioqc/encoding/bamprovider"
	"github.com/grailbio/bioqc/maprate"
	"v.io/x/lib/cmdline"
)

// parseMaprateArgs parses KEY=VALUE arguments into maprate.Opts.
func parseMaprateArgs(argv []string) (maprate.Opts, error) {
	opts := maprate.Opts{}
	for _, arg := range argv {
		switch {
		case strings.HasPrefix(arg, "INPUT="):
			opts.InputPath = strings.TrimPrefix(arg, "INPUT=")
		case strings.HasPrefix(arg, "OUTPUT="):
			opts.OutputPath = strings.TrimPrefix(arg, "OUTPUT=")
		case strings.HasPrefix(arg, "INTERVAL="):
			// Given at all, INTERVAL must name a region file.
			if opts.IntervalPath = strings.TrimPrefix(arg, "INTERVAL="); opts.IntervalPath == "" {
				return maprate.Opts{}, fmt.Errorf("empty region file in '%s'", arg)
			}
		case strings.HasPrefix(arg, "FORMAT="):
			format := strings.TrimPrefix(arg, "FORMAT=")
			if opts.FileType = bamprovider.ParseFileType(format); opts.FileType == bamprovider.Unknown {
				return maprate.Opts{}, fmt.Errorf("unsupported input format '%s', want bam or sam", format)
			}
		default:
			return maprate.Opts{}, fmt.Errorf("unsupported argument '%s'", arg)
		}
	}
	if opts.InputPath == "" {
		return maprate.Opts{}, fmt.Errorf("missing input file in arguments")
	}
	if opts.OutputPath == "" {
		return maprate.Opts{}, fmt.Errorf("missing report file in arguments")
	}
	return opts, nil
}

func newCmdMaprate() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "maprate",
		Short:    "Count mapped reads, and optionally the bases they share with a set of regions",
		ArgsName: "INPUT=<path> OUTPUT=<path> [INTERVAL=<path>] [FORMAT=bam|sam]",
		ArgsLong: `
INPUT is the coordinate-sorted BAM or SAM file to count. Required.
OUTPUT is the report file path. Required.
INTERVAL is a .bed or .interval region file. If given, the report includes
the total read length, the number of reads overlapping a region, and the
number of overlapping bases.
FORMAT forces the input format. By default it is guessed from the INPUT
suffix, and unrecognized suffixes are read as BAM.`,
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		opts, err := parseMaprateArgs(argv)
		if err != nil {
			return env.UsageErrorf("maprate: %v", err)
		}
		return maprate.Run(vcontext.Background(), opts)
	})
	return cmd
}
