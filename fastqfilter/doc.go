// Package fastqfilter clips the low-quality tail of FASTQ reads and drops
// reads that are too short or whose average quality is too low.
//
// Each read's quality string is walked from the 3' end. Low-quality bases
// are clipped until more than Opts.NumHighQualInTail consecutive bases of
// quality >= Opts.TailQual are seen. The clipped read then goes through the
// filters in order; the first one that rejects it is charged in FilterStats.
package fastqfilter
