package lif

// The LIF metadata marks each memory block with the UTF-16LE string
// "MemBlock_". The final zero after the underscore is not part of the
// match; it's the first padding byte of the block id.
var MemBlockMarker = []byte{'M', 0, 'e', 0, 'm', 0, 'B', 0, 'l', 0, 'o', 0, 'c', 0, 'k', 0, '_'}

// Incremental needle matcher. Bytes are fed one at a time; on a mismatch the
// progress simply drops back to zero (no partial match carry-over), so a
// marker whose prefix repeats inside itself can be missed. That's accepted.
type Scanner struct {
	marker   []byte
	progress int
}

func NewScanner(marker []byte) *Scanner {
	return &Scanner{marker: marker}
}

func NewMemBlockScanner() *Scanner {
	return NewScanner(MemBlockMarker)
}

// How many marker bytes have been matched so far
func (s *Scanner) Progress() int {
	return s.progress
}

// Feed one byte to the matcher. Returns true when this byte completes the
// marker, after which the matcher starts over.
func (s *Scanner) Feed(b byte) bool {
	if len(s.marker) == 0 {
		return false
	}
	if b != s.marker[s.progress] {
		s.progress = 0
		return false
	}
	s.progress++
	if s.progress >= len(s.marker) {
		s.progress = 0
		return true
	}
	return false
}

// Consume bytes from the source until a full marker has gone by. Returns the
// stream offset immediately after the marker.
func (s *Scanner) Next(src *ByteSource) (uint64, error) {
	for {
		b, err := src.NextByte()
		if err != nil {
			return 0, err
		}
		if s.Feed(b) {
			return src.Offset(), nil
		}
	}
}
