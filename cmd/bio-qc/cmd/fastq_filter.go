package cmd

import (
	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioqc/fastqfilter"
	"v.io/x/lib/cmdline"
)

func newCmdFastqFilter() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "fastq-filter",
		Short:    "Clip low-quality read tails and filter short or low-quality reads",
		ArgsName: "input-fastq output-fastq",
		ArgsLong: "Paths ending in .gz are read and written gzip compressed.",
	}
	opts := fastqfilter.DefaultOpts
	cmd.Flags.StringVar(&opts.ReportPath, "report", "", "Report file path. If empty, no report is written")
	cmd.Flags.StringVar(&opts.ScoreType, "score-type", opts.ScoreType,
		"Quality encoding of the input: 'sanger', 'solexa', 'illumina1.3+', 'illumina1.5+' or 'illumina1.8+'")
	cmd.Flags.IntVar(&opts.TailQual, "tail-qual", opts.TailQual, "Minimum quality of a high-quality tail base")
	cmd.Flags.IntVar(&opts.NumHighQualInTail, "num-high-qual-in-tail", opts.NumHighQualInTail,
		"Stop clipping once more than this many consecutive high-quality tail bases are seen")
	cmd.Flags.IntVar(&opts.MinReadLength, "min-read-length", opts.MinReadLength,
		"Minimum clipped read length. Set according to the length distribution of the panel")
	cmd.Flags.IntVar(&opts.MinAverageQual, "min-average-qual", opts.MinAverageQual,
		"Minimum average quality of a clipped read")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return env.UsageErrorf("fastq-filter takes input and output paths, but got %v", argv)
		}
		opts.InputPath, opts.OutputPath = argv[0], argv[1]
		_, err := fastqfilter.Run(vcontext.Background(), opts)
		return err
	})
	return cmd
}
