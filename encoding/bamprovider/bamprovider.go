package bamprovider

import (
	"fmt"
	"io"
	"sync"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"v.io/x/lib/vlog"
)

// recordReader is the part of bam.Reader and sam.Reader used by the
// iterators.
type recordReader interface {
	Header() *sam.Header
	Read() (*sam.Record, error)
	Close() error
}

// openFunc creates a recordReader that decodes the given file contents.
type openFunc func(r io.Reader) (recordReader, error)

func openBAM(r io.Reader) (recordReader, error) {
	reader, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, err
	}
	return reader, nil
}

// streamProvider holds the state shared by BAMProvider and SAMProvider.
type streamProvider struct {
	path string
	open openFunc
	err  errors.Once

	mu      sync.Mutex
	nActive int
	header  *sam.Header
}

type streamIterator struct {
	provider *streamProvider
	in       file.File
	reader   recordReader

	active bool
	err    error
	next   *sam.Record
}

// BAMProvider implements Provider for BAM files. The path may name any file
// that github.com/grailbio/base/file can open, e.g., an S3 URL when the S3
// implementation has been registered.
type BAMProvider struct {
	// Path of the *.bam file. Must be nonempty.
	Path string

	once   sync.Once
	stream *streamProvider
}

func (b *BAMProvider) init() *streamProvider {
	b.once.Do(func() {
		b.stream = &streamProvider{path: b.Path, open: openBAM}
	})
	return b.stream
}

// GetHeader implements the Provider interface.
func (b *BAMProvider) GetHeader() (*sam.Header, error) {
	return b.init().getHeader()
}

// NewIterator implements the Provider interface.
func (b *BAMProvider) NewIterator() Iterator {
	return b.init().newIterator()
}

// Close implements the Provider interface.
func (b *BAMProvider) Close() error {
	return b.init().close()
}

func (p *streamProvider) getHeader() (*sam.Header, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.header != nil {
		return p.header, nil
	}

	ctx := vcontext.Background()
	in, err := file.Open(ctx, p.path)
	if err != nil {
		p.err.Set(err)
		return nil, err
	}
	defer in.Close(ctx) // nolint: errcheck
	reader, err := p.open(in.Reader(ctx))
	if err != nil {
		err = fmt.Errorf("%s: %v", p.path, err)
		p.err.Set(err)
		return nil, err
	}
	defer reader.Close() // nolint: errcheck
	p.header = reader.Header()
	return p.header, nil
}

func (p *streamProvider) close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.nActive > 0 {
		vlog.Fatalf("%d iterators still active for %s", p.nActive, p.path)
	}
	return p.err.Err()
}

// newIterator opens the file and creates a reader positioned at the first
// record. If either step fails, it returns an error iterator that holds no
// slot in nActive.
func (p *streamProvider) newIterator() Iterator {
	ctx := vcontext.Background()
	in, err := file.Open(ctx, p.path)
	if err != nil {
		p.err.Set(err)
		return NewErrorIterator(err)
	}
	reader, err := p.open(in.Reader(ctx))
	if err != nil {
		err = fmt.Errorf("%s: %v", p.path, err)
		in.Close(ctx) // nolint: errcheck
		p.err.Set(err)
		return NewErrorIterator(err)
	}
	vlog.VI(1).Infof("%s: opened for reading", p.path)

	p.mu.Lock()
	p.nActive++
	p.mu.Unlock()
	return &streamIterator{
		provider: p,
		in:       in,
		reader:   reader,
		active:   true,
	}
}

func (p *streamProvider) freeIterator(i *streamIterator) {
	if !i.active {
		vlog.Fatal(i)
	}
	i.active = false
	i.internalClose()
	p.mu.Lock()
	p.nActive--
	if p.nActive < 0 {
		vlog.Fatalf("Negative active count for %s", p.path)
	}
	p.mu.Unlock()
}

// Scan implements the Iterator interface.
func (i *streamIterator) Scan() bool {
	if !i.active {
		vlog.Fatal("Reusing iterator")
	}
	if i.err != nil {
		return false
	}
	i.next, i.err = i.reader.Read()
	return i.err == nil
}

// Record implements the Iterator interface.
func (i *streamIterator) Record() *sam.Record {
	return i.next
}

// Err implements the Iterator interface.
func (i *streamIterator) Err() error {
	if i.err == io.EOF {
		return nil
	}
	return i.err
}

// Close implements the Iterator interface.
func (i *streamIterator) Close() error {
	i.provider.freeIterator(i)
	return i.Err()
}

func (i *streamIterator) internalClose() {
	if i.reader != nil {
		if err := i.reader.Close(); err != nil && i.Err() == nil {
			i.err = err
		}
		i.reader = nil
	}
	if i.in != nil {
		if err := i.in.Close(vcontext.Background()); err != nil && i.Err() == nil {
			i.err = err
		}
		i.in = nil
	}
	i.provider.err.Set(i.Err())
}
