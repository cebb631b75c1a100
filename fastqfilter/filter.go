package fastqfilter

import (
	"github.com/grailbio/bioqc/encoding/fastq"
)

// Filter identifies one of the read filters.
type Filter int

const (
	// ShortRead rejects reads shorter than Opts.MinReadLength.
	ShortRead Filter = iota
	// LowAverageQual rejects reads whose mean quality is below
	// Opts.MinAverageQual.
	LowAverageQual

	numFilters = iota
)

// Filters lists the filters in the order they are applied.
var Filters = []Filter{ShortRead, LowAverageQual}

func (f Filter) String() string {
	switch f {
	case ShortRead:
		return "ShortReadFilter"
	case LowAverageQual:
		return "LowAverageQualFilter"
	}
	return "UnknownFilter"
}

// thresholds holds the filter parameters with the quality offset applied.
type thresholds struct {
	tailQual          byte
	numHighQualInTail int
	minReadLength     int
	minAverageQual    int
}

func newThresholds(opts Opts, offset int) thresholds {
	return thresholds{
		tailQual:          byte(opts.TailQual + offset),
		numHighQualInTail: opts.NumHighQualInTail,
		minReadLength:     opts.MinReadLength,
		minAverageQual:    opts.MinAverageQual + offset,
	}
}

// pass reports whether read passes filter f.
func (t thresholds) pass(f Filter, read *fastq.Read) bool {
	switch f {
	case ShortRead:
		return len(read.Seq) >= t.minReadLength
	case LowAverageQual:
		if len(read.Qual) == 0 {
			return false
		}
		sum := 0
		for i := 0; i < len(read.Qual); i++ {
			sum += int(read.Qual[i])
		}
		return sum >= t.minAverageQual*len(read.Qual)
	}
	panic(f)
}

// apply returns the first filter that rejects read.
func (t thresholds) apply(read *fastq.Read) (Filter, bool) {
	for _, f := range Filters {
		if !t.pass(f, read) {
			return f, false
		}
	}
	return 0, true
}
