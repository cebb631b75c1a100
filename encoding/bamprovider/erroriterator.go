package bamprovider

import (
	"github.com/grailbio/hts/sam"
)

// errorIterator stands in for a stream that could not be opened.
type errorIterator struct {
	err error
}

func (i *errorIterator) Scan() bool { return false }

func (i *errorIterator) Record() *sam.Record {
	panic("bamprovider: Record called on a stream that failed to open")
}

func (i *errorIterator) Err() error   { return i.err }
func (i *errorIterator) Close() error { return i.err }

// NewErrorIterator returns an Iterator that yields no records and reports err
// from both Err and Close. Providers return it when a file cannot be opened,
// so callers see the failure through the usual Scan/Err loop.
func NewErrorIterator(err error) Iterator {
	return &errorIterator{err: err}
}
