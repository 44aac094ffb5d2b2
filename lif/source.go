package lif

import (
	"bufio"
	"io"
)

const (
	BufSize = 4096
)

// A forward-only byte reader that remembers how far into the stream it is.
// The offset is what every diagnostic and every extraction offset is based on.
type ByteSource struct {
	reader *bufio.Reader
	offset uint64
}

func NewByteSource(r io.Reader) *ByteSource {
	return &ByteSource{reader: bufio.NewReaderSize(r, BufSize)}
}

// Number of bytes delivered so far
func (s *ByteSource) Offset() uint64 {
	return s.offset
}

// Pull the next byte out of the stream. Running out of data is reported as a
// ReadError wrapping io.EOF, carrying the offset where it happened.
func (s *ByteSource) NextByte() (byte, error) {
	b, err := s.reader.ReadByte()
	if err != nil {
		return 0, &ReadError{Offset: s.offset, Err: err}
	}
	s.offset++
	return b, nil
}
