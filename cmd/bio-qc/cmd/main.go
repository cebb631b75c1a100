package cmd

import (
	"log"

	"v.io/x/lib/cmdline"
)

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-qc",
		Short:    "Quality-control statistics for alignment, region and FASTQ files",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdMaprate(),
			newCmdPanelLength(),
			newCmdFastqFilter(),
		},
	}
}

// Run parses the command line and runs the selected subcommand.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
