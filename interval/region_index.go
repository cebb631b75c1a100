package interval

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
)

// Extensions lists the file suffixes accepted by NewRegionIndexFromPath.
var Extensions = []string{".bed", ".interval"}

// maxLineLen bounds the length of a single region file line.
const maxLineLen = 1 << 20

// SkippedLine describes a region file line that was not loaded.
type SkippedLine struct {
	// LineNum is 1-based.
	LineNum int
	Line    string
	Reason  string
}

// RegionIndex maps each contig to the regions on it, sorted by Start.  It is
// immutable once built, so a single index may be queried from multiple
// goroutines.
type RegionIndex struct {
	// byContig is a contig-keyed map with start-sorted region values.  Always
	// initialized.
	byContig map[string][]Region
	nRegions int
	// nOverlapping is the number of regions that overlap an earlier region on
	// the same contig.
	nOverlapping int
	skipped      []SkippedLine
}

// HasRegionExtension checks whether path names a supported region file.
func HasRegionExtension(path string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// parseRegionLine splits a region line into contig, start and end.  A
// nonempty reason means the line must be skipped.  The returned contig aliases
// line.
func parseRegionLine(line []byte) (contig []byte, region Region, reason string) {
	fields := bytes.SplitN(line, []byte{'\t'}, 4)
	if len(fields) < 3 {
		reason = fmt.Sprintf("expected at least 3 tab-separated fields, found %d", len(fields))
		return
	}
	// gunsafe.BytesToString is fine here: neither string outlives the call.
	a, err := strconv.ParseInt(gunsafe.BytesToString(fields[1]), 10, 32)
	if err != nil {
		reason = fmt.Sprintf("bad start coordinate %q", fields[1])
		return
	}
	b, err := strconv.ParseInt(gunsafe.BytesToString(fields[2]), 10, 32)
	if err != nil {
		reason = fmt.Sprintf("bad end coordinate %q", fields[2])
		return
	}
	if a < 1 || b < 1 {
		reason = fmt.Sprintf("coordinates must be >= 1, found %d and %d", a, b)
		return
	}
	return fields[0], NewRegion(PosType(a), PosType(b)), ""
}

// NewRegionIndex loads regions from a tab-separated contig/start/end stream.
// Lines starting with '@' are headers.  Coordinates are 1-based; a line with a
// coordinate below 1 is skipped like any other malformed line.  Lines that
// don't parse are skipped
// with a warning and are listed by Skipped(); they never cause an error.  The
// only errors returned are read failures.
func NewRegionIndex(reader io.Reader) (*RegionIndex, error) {
	idx := &RegionIndex{byContig: make(map[string][]Region)}
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64<<10), maxLineLen)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) > 0 && line[0] == '@' {
			continue
		}
		contig, region, reason := parseRegionLine(line)
		if reason != "" {
			log.Printf("interval.NewRegionIndex: skipping line %d '%s': %s", lineNum, line, reason)
			idx.skipped = append(idx.skipped, SkippedLine{LineNum: lineNum, Line: string(line), Reason: reason})
			continue
		}
		// string(contig) makes a heap copy; contig refers to bytes on line that
		// will be overwritten by the next Scan.
		name := string(contig)
		idx.byContig[name] = append(idx.byContig[name], region)
		idx.nRegions++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, fmt.Sprintf("interval.NewRegionIndex: read failure after line %d", lineNum))
	}
	for _, regions := range idx.byContig {
		sort.SliceStable(regions, func(i, j int) bool { return regions[i].Start < regions[j].Start })
		var maxEnd PosType
		for i, r := range regions {
			if i > 0 && r.Start <= maxEnd {
				idx.nOverlapping++
			}
			if i == 0 || r.End > maxEnd {
				maxEnd = r.End
			}
		}
	}
	log.Printf("Regions loaded: %d region(s) on %d contig(s), %d line(s) skipped.",
		idx.nRegions, len(idx.byContig), len(idx.skipped))
	if idx.nOverlapping > 0 {
		log.Printf("interval.NewRegionIndex: %d region(s) overlap another region on the same contig; "+
			"overlap lengths will be counted once per region", idx.nOverlapping)
	}
	return idx, nil
}

func isNotExist(err error) bool {
	return errors.Is(errors.NotExist, err) || os.IsNotExist(err)
}

// NewRegionIndexFromPath is a wrapper for NewRegionIndex that takes a path
// instead of an io.Reader.  The path must end in one of Extensions; otherwise
// an errors.NotSupported error is returned.  A missing file yields an
// errors.NotExist error.
func NewRegionIndexFromPath(ctx context.Context, path string) (idx *RegionIndex, err error) {
	if !HasRegionExtension(path) {
		return nil, errors.E(errors.NotSupported,
			fmt.Sprintf("interval.NewRegionIndexFromPath: unsupported region file format '%s' (want %s)",
				path, strings.Join(Extensions, " or ")))
	}
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		if isNotExist(err) {
			return nil, errors.E(errors.NotExist, fmt.Sprintf("interval.NewRegionIndexFromPath: region file '%s' not found", path), err)
		}
		return nil, errors.E(err, fmt.Sprintf("interval.NewRegionIndexFromPath: open '%s'", path))
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if idx, err = NewRegionIndex(in.Reader(ctx)); err != nil {
		return nil, errors.E(err, path)
	}
	return idx, nil
}

// OverlapLength returns the total number of bases shared by the inclusive
// span [start, end] and the regions on contig.  The two coordinates may be
// given in either order.  A contig with no regions yields 0.
//
// Each overlapping region is counted separately, so when the panel itself
// contains overlapping regions the result can exceed the span length.
func (idx *RegionIndex) OverlapLength(contig string, start, end int) int {
	if start > end {
		start, end = end, start
	}
	total := 0
	for _, r := range idx.byContig[contig] {
		if int(r.Start) > end {
			// Sorted by start: nothing further can overlap.
			break
		}
		total += r.Overlap(start, end)
	}
	return total
}

// Contigs returns the names of the contigs with at least one region, sorted.
func (idx *RegionIndex) Contigs() []string {
	contigs := make([]string, 0, len(idx.byContig))
	for contig := range idx.byContig {
		contigs = append(contigs, contig)
	}
	sort.Strings(contigs)
	return contigs
}

// Regions returns a copy of the start-sorted regions on contig.
func (idx *RegionIndex) Regions(contig string) []Region {
	regions := idx.byContig[contig]
	if regions == nil {
		return nil
	}
	return append([]Region(nil), regions...)
}

// Len returns the total number of regions.
func (idx *RegionIndex) Len() int {
	return idx.nRegions
}

// NumOverlapping returns the number of regions overlapping an earlier region
// on the same contig.
func (idx *RegionIndex) NumOverlapping() int {
	return idx.nOverlapping
}

// Skipped returns the lines that were not loaded.
func (idx *RegionIndex) Skipped() []SkippedLine {
	return idx.skipped
}
