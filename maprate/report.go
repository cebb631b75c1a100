package maprate

import (
	"bytes"
	"context"
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

// percent renders n/d as a percentage, or "N/A" if d is zero.
func percent(n, d int64) string {
	if d == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", float64(n)*100/float64(d))
}

// Report renders stats as text. withOverlap adds the region overlap lines.
func Report(stats Stats, withOverlap bool) string {
	buf := bytes.Buffer{}
	fmt.Fprintf(&buf, "Total reads: %d\n", stats.TotalReads)
	fmt.Fprintf(&buf, "Mapped read count: %d  %s\n",
		stats.MappedReads(), percent(stats.MappedReads(), stats.TotalReads))
	fmt.Fprintf(&buf, "Unmapped read count: %d  %s\n",
		stats.UnmappedReads, percent(stats.UnmappedReads, stats.TotalReads))
	fmt.Fprintf(&buf, "Secondary or supplementary read: %d  %s\n",
		stats.SecondaryOrSupplementaryReads, percent(stats.SecondaryOrSupplementaryReads, stats.TotalReads))
	if withOverlap {
		fmt.Fprintf(&buf, "Total length of reads: %d\n", stats.TotalReadLength)
		fmt.Fprintf(&buf, "Read has overlaps: %d  %s\n",
			stats.ReadsWithOverlap, percent(stats.ReadsWithOverlap, stats.TotalReads))
		fmt.Fprintf(&buf, "Total overlap length in reads: %d  %s\n",
			stats.TotalOverlapLength, percent(stats.TotalOverlapLength, stats.TotalReadLength))
	}
	return buf.String()
}

// WriteReport writes text to path, replacing any existing file.
func WriteReport(ctx context.Context, path, text string) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return errors.E(err, "Couldn't create report file:", path)
	}
	defer func() {
		if err2 := out.Close(ctx); err == nil && err2 != nil {
			err = errors.E(err2, "error closing report file:", path)
		}
	}()
	if _, err = out.Writer(ctx).Write([]byte(text)); err != nil {
		return errors.E(err, "error writing to report file:", path)
	}
	return nil
}
