package lif

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func feedAll(s *Scanner, data []byte) []int {
	matches := make([]int, 0)
	for i, b := range data {
		if s.Feed(b) {
			matches = append(matches, i+1)
		}
	}
	return matches
}

func TestScanner_FindsMarker(t *testing.T) {
	data := concat(filler(10, 0), MemBlockMarker, filler(5, 3), MemBlockMarker)
	matches := feedAll(NewMemBlockScanner(), data)
	require.Equal(t, []int{10 + len(MemBlockMarker), 10 + 2*len(MemBlockMarker) + 5}, matches)
}

func TestScanner_ResetsOnMismatch(t *testing.T) {
	s := NewMemBlockScanner()
	for _, b := range MemBlockMarker[:6] {
		require.False(t, s.Feed(b))
	}
	require.Equal(t, 6, s.Progress())
	require.False(t, s.Feed('x'))
	require.Equal(t, 0, s.Progress())
}

// A mismatching byte is never compared against the start of the marker again,
// so a marker that starts inside a failed partial match is lost.
func TestScanner_SelfOverlapNaiveReset(t *testing.T) {
	data := concat([]byte{'M', 0}, MemBlockMarker)
	require.Empty(t, feedAll(NewMemBlockScanner(), data))

	// With anything in between that isn't part of the marker, it's found again
	data = concat([]byte{'M', 0, 'x'}, MemBlockMarker)
	require.Equal(t, []int{len(data)}, feedAll(NewMemBlockScanner(), data))

	s := NewScanner([]byte("aab"))
	require.Empty(t, feedAll(s, []byte("aaab")))
	require.Equal(t, []int{3, 7}, feedAll(NewScanner([]byte("aab")), []byte("aab.aab")))
}

func TestScanner_Next(t *testing.T) {
	data := concat(filler(100, 0), MemBlockMarker, filler(3, 0))
	src := NewByteSource(bytes.NewReader(data))
	s := NewMemBlockScanner()
	offset, err := s.Next(src)
	require.NoError(t, err)
	require.Equal(t, uint64(100+len(MemBlockMarker)), offset)
	require.Equal(t, offset, src.Offset())
}

func TestScanner_NoMarkerRunsToEnd(t *testing.T) {
	data := filler(BufSize*3+17, 0)
	src := NewByteSource(bytes.NewReader(data))
	_, err := NewMemBlockScanner().Next(src)
	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	require.True(t, readErr.IsEndOfInput())
	require.True(t, errors.Is(err, io.EOF))
	require.Equal(t, uint64(len(data)), readErr.Offset)
	require.Equal(t, uint64(len(data)), src.Offset())
}

func TestScanner_EmptyMarker(t *testing.T) {
	s := NewScanner(nil)
	require.Empty(t, feedAll(s, []byte("anything")))
}
