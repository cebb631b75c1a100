package fastqfilter

import (
	"bytes"
	"fmt"
)

// FilterStats counts the bases and reads seen by Run.
type FilterStats struct {
	ClippedBases int64
	KeptBases    int64
	// FilteredReads is indexed by Filter.
	FilteredReads [numFilters]int64
	KeptReads     int64
}

// TotalFiltered returns the number of reads rejected by any filter.
func (s FilterStats) TotalFiltered() int64 {
	var n int64
	for _, c := range s.FilteredReads {
		n += c
	}
	return n
}

func rate(n, d int64) string {
	if d == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.4f%%", float64(n)*100/float64(d))
}

// Report renders the statistics as text. The "filted" spelling is part of the
// report format.
func (s FilterStats) Report() string {
	totalBases := s.ClippedBases + s.KeptBases
	filtered := s.TotalFiltered()
	totalReads := filtered + s.KeptReads

	buf := bytes.Buffer{}
	fmt.Fprintf(&buf, "Total clipped base: %d\t\tclip rate: %s\n", s.ClippedBases, rate(s.ClippedBases, totalBases))
	fmt.Fprintf(&buf, "Total kept base: %d\t\tkept rate: %s\n", s.KeptBases, rate(s.KeptBases, totalBases))
	fmt.Fprintf(&buf, "Clipped base / Kept base: %s\n", rate(s.ClippedBases, s.KeptBases))
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Total filted read: %d\t\tfilt rate: %s\n", filtered, rate(filtered, totalReads))
	fmt.Fprintf(&buf, "Total kept read: %d\t\tkept rate: %s\n", s.KeptReads, rate(s.KeptReads, totalReads))
	fmt.Fprintf(&buf, "Filted read / Kept read: %s\n", rate(filtered, s.KeptReads))
	for _, f := range Filters {
		fmt.Fprintf(&buf, "\tFilter '%s': %d\t\tfilt rate:%s\n", f, s.FilteredReads[f], rate(s.FilteredReads[f], totalReads))
	}
	return buf.String()
}
