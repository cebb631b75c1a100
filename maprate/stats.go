package maprate

// Stats accumulates the per-read counters of a scan. The zero value is an
// empty accumulator. All counters only grow.
type Stats struct {
	TotalReads                    int64
	UnmappedReads                 int64
	SecondaryOrSupplementaryReads int64

	// The following are updated only when overlap counting is enabled.
	TotalOverlapLength int64
	TotalReadLength    int64
	ReadsWithOverlap   int64
}

// RecordRead counts one read. A read may be both unmapped and
// secondary/supplementary, in which case both counters grow.
func (s *Stats) RecordRead(unmapped, secondaryOrSupplementary bool) {
	s.TotalReads++
	if unmapped {
		s.UnmappedReads++
	}
	if secondaryOrSupplementary {
		s.SecondaryOrSupplementaryReads++
	}
}

// RecordOverlap adds a read's length and the number of its bases that fall in
// target regions.
func (s *Stats) RecordOverlap(overlapLength, readLength int) {
	if overlapLength > 0 {
		s.TotalOverlapLength += int64(overlapLength)
		s.ReadsWithOverlap++
	}
	s.TotalReadLength += int64(readLength)
}

// MappedReads returns TotalReads - UnmappedReads -
// SecondaryOrSupplementaryReads.
//
// A read that is both unmapped and secondary is subtracted twice.
func (s Stats) MappedReads() int64 {
	return s.TotalReads - s.UnmappedReads - s.SecondaryOrSupplementaryReads
}
