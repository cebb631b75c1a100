package fastqfilter

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Opts defines the parameters of Run.
type Opts struct {
	// InputPath is the FASTQ file to filter. Required. A ".gz" suffix means
	// gzip compressed.
	InputPath string
	// OutputPath is where the kept reads are written. Required. A ".gz"
	// suffix means gzip compressed.
	OutputPath string
	// ReportPath, if nonempty, is where the report is written.
	ReportPath string
	// ScoreType names the quality encoding of the input: "sanger",
	// "solexa", "illumina1.3+", "illumina1.5+" or "illumina1.8+".
	ScoreType string
	// TailQual is the quality, without the encoding offset, at or above
	// which a tail base counts as high quality.
	TailQual int
	// NumHighQualInTail is the number of consecutive high-quality tail bases
	// that must be exceeded to stop clipping.
	NumHighQualInTail int
	// MinReadLength is the minimum clipped read length.
	MinReadLength int
	// MinAverageQual is the minimum average quality, without the encoding
	// offset, of the clipped read.
	MinAverageQual int
}

// DefaultOpts holds the default values of Opts.
var DefaultOpts = Opts{
	ScoreType:         "sanger",
	TailQual:          30,
	NumHighQualInTail: 10,
	MinReadLength:     50,
	MinAverageQual:    30,
}

// QualityOffset returns the ASCII offset of the given quality encoding.
func QualityOffset(scoreType string) (int, error) {
	switch scoreType {
	case "sanger":
		return 33, nil
	case "solexa", "illumina1.3+", "illumina1.5+", "illumina1.8+":
		return 64, nil
	}
	return 0, errors.E(errors.Invalid, fmt.Sprintf("unsupported quality score type '%s'", scoreType))
}

func validate(opts *Opts) error {
	if opts.InputPath == "" {
		return errors.E(errors.Invalid, "must provide an input fastq")
	}
	if opts.OutputPath == "" {
		return errors.E(errors.Invalid, "must provide an output fastq")
	}
	offset, err := QualityOffset(opts.ScoreType)
	if err != nil {
		return err
	}
	if opts.TailQual < 0 || opts.TailQual+offset > 0xff {
		return errors.E(errors.Invalid, fmt.Sprintf("tail-qual %d out of range", opts.TailQual))
	}
	if opts.NumHighQualInTail < 0 {
		return errors.E(errors.Invalid, "num-high-qual-in-tail must be non-negative")
	}
	if opts.MinReadLength < 0 {
		return errors.E(errors.Invalid, "min-read-length must be non-negative")
	}
	return nil
}
