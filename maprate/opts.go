package maprate

import (
	"github.com/grailbio/base/errors"
	"github.com/grailbio/bioqc/encoding/bamprovider"
)

// Opts defines the inputs and outputs of Run.
type Opts struct {
	// InputPath is the BAM or SAM file to scan. Required.
	InputPath string
	// OutputPath is where the report is written. Required.
	OutputPath string
	// IntervalPath is an optional .bed or .interval region file. If set, the
	// report includes region overlap statistics.
	IntervalPath string
	// FileType forces the input format. If Unknown, it is guessed from
	// InputPath.
	FileType bamprovider.FileType
}

func validate(opts *Opts) error {
	if opts.InputPath == "" {
		return errors.E(errors.Invalid, "missing input file (INPUT=<path>)")
	}
	if opts.OutputPath == "" {
		return errors.E(errors.Invalid, "missing report file (OUTPUT=<path>)")
	}
	return nil
}
