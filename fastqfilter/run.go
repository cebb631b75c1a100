package fastqfilter

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bioqc/encoding/fastq"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Process clips and filters every read of r and writes the kept reads to w.
// The quality offset must be valid for opts.ScoreType.
func Process(r io.Reader, w io.Writer, opts Opts) (FilterStats, error) {
	offset, err := QualityOffset(opts.ScoreType)
	if err != nil {
		return FilterStats{}, err
	}
	t := newThresholds(opts, offset)

	var (
		stats   FilterStats
		read    fastq.Read
		scanner = fastq.NewScanner(r)
		writer  = fastq.NewWriter(w)
	)
	for scanner.Scan(&read) {
		rawLength := len(read.Seq)
		read.Trim(ClipLowQualTail(read.Qual, t.tailQual, t.numHighQualInTail))
		stats.ClippedBases += int64(rawLength - len(read.Seq))
		stats.KeptBases += int64(len(read.Seq))
		if f, ok := t.apply(&read); !ok {
			stats.FilteredReads[f]++
			continue
		}
		stats.KeptReads++
		if err := writer.Write(&read); err != nil {
			return FilterStats{}, errors.Wrap(err, "fastqfilter: write")
		}
	}
	if err := scanner.Err(); err != nil {
		return FilterStats{}, errors.Wrap(err, "fastqfilter: illegal read format")
	}
	if err := writer.Flush(); err != nil {
		return FilterStats{}, errors.Wrap(err, "fastqfilter: write")
	}
	return stats, nil
}

func isGzip(path string) bool {
	return fileio.DetermineType(path) == fileio.Gzip
}

// Run filters opts.InputPath into opts.OutputPath and, if opts.ReportPath is
// set, writes the report.
func Run(ctx context.Context, opts Opts) (stats FilterStats, err error) {
	if err = validate(&opts); err != nil {
		return
	}
	in, err := file.Open(ctx, opts.InputPath)
	if err != nil {
		return FilterStats{}, errors.Wrapf(err, "fastqfilter: open %s", opts.InputPath)
	}
	defer in.Close(ctx) // nolint: errcheck
	var r io.Reader = in.Reader(ctx)
	if isGzip(opts.InputPath) {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return FilterStats{}, errors.Wrapf(err, "fastqfilter: %s", opts.InputPath)
		}
		defer gz.Close() // nolint: errcheck
		r = gz
	}

	out, err := file.Create(ctx, opts.OutputPath)
	if err != nil {
		return FilterStats{}, errors.Wrapf(err, "fastqfilter: create %s", opts.OutputPath)
	}
	var (
		w  = out.Writer(ctx)
		gz *gzip.Writer
	)
	if isGzip(opts.OutputPath) {
		gz = gzip.NewWriter(w)
		w = gz
	}
	stats, err = Process(r, w, opts)
	if gz != nil {
		if cerr := gz.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if cerr := out.Close(ctx); cerr != nil && err == nil {
		err = errors.Wrapf(cerr, "fastqfilter: close %s", opts.OutputPath)
	}
	if err != nil {
		return FilterStats{}, errors.Wrapf(err, "fastqfilter: %s", opts.InputPath)
	}
	log.Printf("fastqfilter: kept %d reads, filtered %d reads, clipped %d bases",
		stats.KeptReads, stats.TotalFiltered(), stats.ClippedBases)

	if opts.ReportPath != "" {
		if err = writeReport(ctx, opts.ReportPath, stats.Report()); err != nil {
			return FilterStats{}, err
		}
	}
	return stats, nil
}

func writeReport(ctx context.Context, path, text string) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "fastqfilter: create %s", path)
	}
	defer func() {
		if cerr := out.Close(ctx); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "fastqfilter: close %s", path)
		}
	}()
	_, err = io.WriteString(out.Writer(ctx), text)
	return errors.Wrapf(err, "fastqfilter: write %s", path)
}
