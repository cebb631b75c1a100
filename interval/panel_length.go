package interval

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/grailbio/base/errors"
)

// LengthFraction is one row of a panel length distribution.
type LengthFraction struct {
	// Length is a region length, End - Start.
	Length int
	// Count is the number of regions with exactly this length.
	Count int
	// Fraction is the fraction of all regions whose length is >= Length.
	Fraction float64
}

// PanelLengthOpts controls WritePanelLengths.
type PanelLengthOpts struct {
	// Format is "table" (tab-separated) or "csv".
	Format string
	// LowBound stops the listing after the first row whose fraction exceeds
	// it.  Ignored when Query >= 0.
	LowBound float64
	// Query, if >= 0, prints only the fraction of regions that are at least
	// this long.
	Query int
}

// DefaultPanelLengthOpts holds the default values of PanelLengthOpts.
var DefaultPanelLengthOpts = PanelLengthOpts{
	Format:   "table",
	LowBound: 0.8,
	Query:    -1,
}

// PanelLengths computes the length distribution of the regions in idx, in
// order of decreasing length.  It returns nil for an empty index.
func PanelLengths(idx *RegionIndex) []LengthFraction {
	if idx.nRegions == 0 {
		return nil
	}
	counts := make(map[int]int)
	for _, regions := range idx.byContig {
		for _, r := range regions {
			counts[r.Len()]++
		}
	}
	fractions := make([]LengthFraction, 0, len(counts))
	for length, n := range counts {
		fractions = append(fractions, LengthFraction{Length: length, Count: n})
	}
	sort.Slice(fractions, func(i, j int) bool { return fractions[i].Length > fractions[j].Length })
	cumulative := 0
	for i := range fractions {
		cumulative += fractions[i].Count
		fractions[i].Fraction = float64(cumulative) / float64(idx.nRegions)
	}
	return fractions
}

func formatSeparator(format string) (string, error) {
	switch format {
	case "table":
		return "\t", nil
	case "csv":
		return ",", nil
	}
	return "", errors.E(errors.Invalid, fmt.Sprintf("interval.WritePanelLengths: unknown output format '%s'", format))
}

// WritePanelLengths prints a distribution computed by PanelLengths.
//
// Without a query, it prints "length<sep>fraction" rows, longest first, up to
// and including the first row whose fraction exceeds opts.LowBound.
//
// With opts.Query >= 0, it prints a header followed by a single row: the
// shortest length that is still >= Query together with its fraction, or
// "<Query><sep>1" if every region is at least Query long.
func WritePanelLengths(w io.Writer, fractions []LengthFraction, opts PanelLengthOpts) error {
	sep, err := formatSeparator(opts.Format)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(w)
	if opts.Query >= 0 {
		fmt.Fprintf(out, "length%spercentage\n", sep)
		var last LengthFraction
		found := false
		for _, f := range fractions {
			if f.Length < opts.Query {
				fmt.Fprintf(out, "%d%s%.10f\n", last.Length, sep, last.Fraction)
				found = true
				break
			}
			last = f
		}
		if !found {
			fmt.Fprintf(out, "%d%s1\n", opts.Query, sep)
		}
		return out.Flush()
	}
	for _, f := range fractions {
		fmt.Fprintf(out, "%d%s%.10f\n", f.Length, sep, f.Fraction)
		if f.Fraction > opts.LowBound {
			break
		}
	}
	return out.Flush()
}
