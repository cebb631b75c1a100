/*Package interval implements the region index used to measure how much of an
  aligned read falls inside a target panel.

  Regions are loaded from a 3-column BED-like file (contig, start, end) into a
  per-contig list sorted by start position.  Unlike a BED union, overlapping
  regions are NOT merged; each one is tracked separately and contributes to
  overlap totals on its own, so panels are expected to be pre-merged.
  Coordinates are inclusive and 1-based, and every position fits in a PosType.
*/
package interval
