package interval

import (
	"fmt"
	"math"
)

// PosType is the type used to represent region coordinates.  int32 is wide
// enough since that's what BAM positions are limited to.
type PosType int32

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt32

// Region is an inclusive, 1-based [Start, End] interval on a single contig.
// The contig is the key the region is stored under in a RegionIndex.
//
// Invariant: Start <= End.
type Region struct {
	Start PosType
	End   PosType
}

// NewRegion creates a Region from a coordinate pair given in either order.
func NewRegion(a, b PosType) Region {
	if a > b {
		a, b = b, a
	}
	return Region{Start: a, End: b}
}

// Overlap returns the number of bases shared by the region and the inclusive
// span [start, end].  It returns 0 if they are disjoint.
//
// REQUIRES: start <= end.
func (r Region) Overlap(start, end int) int {
	maxStart := int(r.Start)
	if start > maxStart {
		maxStart = start
	}
	minEnd := int(r.End)
	if end < minEnd {
		minEnd = end
	}
	if maxStart > minEnd {
		return 0
	}
	return minEnd - maxStart + 1
}

// Len returns End - Start.  This is the length reported in panel length
// distributions; the number of bases covered is Len()+1.
func (r Region) Len() int {
	return int(r.End - r.Start)
}

func (r Region) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}
