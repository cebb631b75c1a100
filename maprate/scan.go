package maprate

import (
	"context"
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bioqc/encoding/bamprovider"
	"github.com/grailbio/bioqc/interval"
	"github.com/grailbio/hts/sam"
)

// progressInterval is the number of records between progress messages and
// context checks.
const progressInterval = 1000000

func checkSortOrder(header *sam.Header) error {
	if header.SortOrder != sam.Coordinate {
		return errors.E(errors.Invalid,
			fmt.Sprintf("maprate.Scan: input must be coordinate sorted, but its sort order is '%v'", header.SortOrder))
	}
	return nil
}

// warnMissingContigs logs the region contigs that no read can be aligned to.
func warnMissingContigs(header *sam.Header, index *interval.RegionIndex) {
	for _, contig := range index.Contigs() {
		if bamprovider.RefByName(header, contig) == nil {
			log.Printf("maprate.Scan: region contig '%s' (%d regions) is not in the input header",
				contig, len(index.Regions(contig)))
		}
	}
}

// accumulate updates stats with one read. Unmapped reads have no overlap.
func (s *Stats) accumulate(read AlignedRead, index *interval.RegionIndex) {
	s.RecordRead(read.Unmapped, read.SecondaryOrSupplementary)
	if index == nil {
		return
	}
	overlap := 0
	if !read.Unmapped {
		start, end := read.Span()
		overlap = index.OverlapLength(read.ReferenceName, start, end)
	}
	s.RecordOverlap(overlap, read.ReadLength)
}

// Scan reads every record of provider and returns the accumulated
// statistics. If index is nil, only the read counters are computed.
// Otherwise every read adds its length to the total, and mapped reads add the
// bases they share with the index. Unmapped reads never query the index, even
// when they carry a placement, so they always contribute zero overlap.
//
// The input must be coordinate sorted according to its header; otherwise an
// errors.Invalid error is returned before any record is read. Scan closes the
// iterator it creates, but not the provider. No statistics are returned on
// error.
func Scan(ctx context.Context, provider bamprovider.Provider, index *interval.RegionIndex) (Stats, error) {
	header, err := provider.GetHeader()
	if err != nil {
		return Stats{}, err
	}
	if err = checkSortOrder(header); err != nil {
		return Stats{}, err
	}
	if index != nil {
		warnMissingContigs(header, index)
	}

	var (
		stats Stats
		e     errors.Once
		iter  = provider.NewIterator()
	)
	for iter.Scan() {
		rec := iter.Record()
		read, err := NewAlignedRead(rec)
		sam.PutInFreePool(rec)
		if err != nil {
			e.Set(err)
			break
		}
		stats.accumulate(read, index)
		if stats.TotalReads%progressInterval == 0 {
			log.Debug.Printf("maprate.Scan: %d records, %d unmapped", stats.TotalReads, stats.UnmappedReads)
			if err := ctx.Err(); err != nil {
				e.Set(err)
				break
			}
		}
	}
	e.Set(iter.Close())
	if err := e.Err(); err != nil {
		return Stats{}, err
	}
	log.Printf("maprate.Scan: finished, %d records, %d unmapped, %d secondary or supplementary",
		stats.TotalReads, stats.UnmappedReads, stats.SecondaryOrSupplementaryReads)
	return stats, nil
}

// Run computes the statistics of opts.InputPath and writes the report to
// opts.OutputPath. Nothing is written on error.
func Run(ctx context.Context, opts Opts) error {
	if err := validate(&opts); err != nil {
		return err
	}
	var index *interval.RegionIndex
	if opts.IntervalPath != "" {
		log.Printf("Reading regions from %s; the report will include overlap statistics", opts.IntervalPath)
		var err error
		if index, err = interval.NewRegionIndexFromPath(ctx, opts.IntervalPath); err != nil {
			return err
		}
	}

	log.Printf("Reading records from %s", opts.InputPath)
	provider := bamprovider.NewProvider(opts.InputPath, bamprovider.ProviderOpts{FileType: opts.FileType})
	e := errors.Once{}
	stats, err := Scan(ctx, provider, index)
	e.Set(err)
	e.Set(provider.Close())
	if err := e.Err(); err != nil {
		return errors.E(err, opts.InputPath)
	}

	log.Printf("Writing report to %s", opts.OutputPath)
	return WriteReport(ctx, opts.OutputPath, Report(stats, index != nil))
}
