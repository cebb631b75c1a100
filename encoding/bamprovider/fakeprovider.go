package bamprovider

import (
	"sync"

	"github.com/grailbio/hts/sam"
	"v.io/x/lib/vlog"
)

// FakeProvider is only for unittests. It yields the given records, and keeps
// track of the iterators so that tests can check that every stream was
// closed.
type FakeProvider struct {
	header *sam.Header
	recs   []*sam.Record
	// iterErr, if set, is reported by every iterator after the records are
	// exhausted.
	iterErr error

	mu      sync.Mutex
	nActive int
	closed  bool
}

type fakeIterator struct {
	provider *FakeProvider
	recs     []*sam.Record
	rec      *sam.Record
	err      error
}

// NewFakeProvider creates a provider that returns "header" in response to a
// GetHeader() call, and recs by NewIterator calls.
func NewFakeProvider(header *sam.Header, recs []*sam.Record) *FakeProvider {
	return &FakeProvider{header: header, recs: recs}
}

// NewFakeProviderWithError is like NewFakeProvider, but the iterators fail
// with err after yielding recs.
func NewFakeProviderWithError(header *sam.Header, recs []*sam.Record, err error) *FakeProvider {
	return &FakeProvider{header: header, recs: recs, iterErr: err}
}

// GetHeader implements the Provider interface. It returns the header passed to
// the constructor.
func (b *FakeProvider) GetHeader() (*sam.Header, error) {
	return b.header, nil
}

// Close implements the Provider interface.
func (b *FakeProvider) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.nActive > 0 {
		vlog.Fatalf("%d iterators still active", b.nActive)
	}
	b.closed = true
	return nil
}

// Closed reports whether Close has been called and no iterator remains open.
func (b *FakeProvider) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed && b.nActive == 0
}

// NewIterator implements the Provider interface.
func (b *FakeProvider) NewIterator() Iterator {
	b.mu.Lock()
	b.nActive++
	b.mu.Unlock()
	return &fakeIterator{provider: b, recs: b.recs}
}

// Err implements the Iterator interface.
func (i *fakeIterator) Err() error {
	return i.err
}

// Close implements the Iterator interface.
func (i *fakeIterator) Close() error {
	i.provider.mu.Lock()
	i.provider.nActive--
	i.provider.mu.Unlock()
	return i.err
}

// Scan implements the Iterator interface.
func (i *fakeIterator) Scan() bool {
	if len(i.recs) == 0 {
		i.err = i.provider.iterErr
		return false
	}
	i.rec = i.recs[0]
	i.recs = i.recs[1:]
	return true
}

// Record implements the Iterator interface.
func (i *fakeIterator) Record() *sam.Record {
	// Return a copy so that the code under test cannot alter the
	// original test input data.
	copy := sam.GetFromFreePool()
	*copy = *i.rec
	return copy
}
