package maprate

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/hts/sam"
)

// AlignedRead is the part of an alignment record that the statistics need.
type AlignedRead struct {
	ReferenceName string
	// AlignmentStart and AlignmentEnd are 1-based and inclusive. They may be
	// in either order; use Span for the normalized pair.
	AlignmentStart int
	AlignmentEnd   int
	ReadLength     int

	Unmapped                 bool
	SecondaryOrSupplementary bool
}

// NewAlignedRead extracts an AlignedRead from rec. It returns an
// errors.Invalid error for a mapped record without a reference or position.
// Unmapped records only need a sequence.
func NewAlignedRead(rec *sam.Record) (AlignedRead, error) {
	read := AlignedRead{
		ReadLength:               rec.Seq.Length,
		Unmapped:                 rec.Flags&sam.Unmapped != 0,
		SecondaryOrSupplementary: rec.Flags&(sam.Secondary|sam.Supplementary) != 0,
	}
	if read.Unmapped {
		if rec.Ref != nil {
			read.ReferenceName = rec.Ref.Name()
		}
		return read, nil
	}
	if rec.Ref == nil || rec.Pos < 0 {
		return AlignedRead{}, errors.E(errors.Invalid,
			fmt.Sprintf("maprate: read '%s' is mapped but has no reference or position (ref %v, pos %d)",
				rec.Name, rec.Ref, rec.Pos))
	}
	read.ReferenceName = rec.Ref.Name()
	read.AlignmentStart = rec.Pos + 1
	read.AlignmentEnd = rec.End()
	if len(rec.Cigar) == 0 {
		// No CIGAR means no reference span; treat the read as covering its
		// start position only.
		read.AlignmentEnd = read.AlignmentStart
	}
	return read, nil
}

// Span returns AlignmentStart and AlignmentEnd in ascending order.
func (r AlignedRead) Span() (start, end int) {
	if r.AlignmentStart > r.AlignmentEnd {
		return r.AlignmentEnd, r.AlignmentStart
	}
	return r.AlignmentStart, r.AlignmentEnd
}
