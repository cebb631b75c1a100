/*Package maprate computes the mapping-rate statistics of a coordinate-sorted
  BAM or SAM file.

  A single pass over the alignment stream counts total, unmapped and
  secondary/supplementary reads. If a region file is given, each mapped read's
  aligned span is also intersected with the regions (see
  interval.RegionIndex), and the report includes the total read length, the
  number of reads that touch a region, and the total number of overlapping
  bases.

  The report looks like:

    Total reads: 5
    Mapped read count: 3  60.00%
    Unmapped read count: 1  20.00%
    Secondary or supplementary read: 1  20.00%
    Total length of reads: 100
    Read has overlaps: 2  40.00%
    Total overlap length in reads: 30  30.00%

  The last three lines are present only when a region file is used.
*/
package maprate
