/*Command bio-qc computes quality-control statistics of sequencing data.

  Subcommands:

    bio-qc maprate INPUT=<bam|sam> OUTPUT=<report> [INTERVAL=<bed|interval>]

  counts total, mapped, unmapped and secondary/supplementary reads of a
  coordinate-sorted alignment file. With INTERVAL, it also reports how many
  aligned bases fall inside the regions of the file.

    bio-qc panel-length [-format table|csv] [-low-bound 0.8] [-query N] <regions>

  prints the length distribution of the regions of a .bed or .interval file.

    bio-qc fastq-filter [-report path] [-score-type sanger] ... <in.fastq> <out.fastq>

  clips low-quality read tails and filters short or low-quality reads.
*/
package main
