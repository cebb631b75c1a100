package bamprovider

import (
	"io"
	"sync"

	"github.com/grailbio/hts/sam"
)

// samReader adds a no-op Close to sam.Reader.
type samReader struct {
	*sam.Reader
}

func (samReader) Close() error { return nil }

func openSAM(r io.Reader) (recordReader, error) {
	reader, err := sam.NewReader(r)
	if err != nil {
		return nil, err
	}
	return samReader{reader}, nil
}

// SAMProvider implements Provider for uncompressed SAM text files.
type SAMProvider struct {
	// Path of the *.sam file. Must be nonempty.
	Path string

	once   sync.Once
	stream *streamProvider
}

func (s *SAMProvider) init() *streamProvider {
	s.once.Do(func() {
		s.stream = &streamProvider{path: s.Path, open: openSAM}
	})
	return s.stream
}

// GetHeader implements the Provider interface.
func (s *SAMProvider) GetHeader() (*sam.Header, error) {
	return s.init().getHeader()
}

// NewIterator implements the Provider interface.
func (s *SAMProvider) NewIterator() Iterator {
	return s.init().newIterator()
}

// Close implements the Provider interface.
func (s *SAMProvider) Close() error {
	return s.init().close()
}
