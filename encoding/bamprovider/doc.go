// Package bamprovider provides utilities for streaming the records of a BAM
// or SAM file.
//
// The Provider is an interface for reading the header and the records of one
// alignment file. BAMProvider and SAMProvider implement it on top of
// github.com/grailbio/base/file, so the path may name any registered file
// scheme. NewFakeProvider serves records from memory for unittests.
package bamprovider
