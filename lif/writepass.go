package lif

import (
	"io"
)

// A writer which keeps writing until the whole buffer is out, and which
// refuses to do anything once it has failed. Every failure is reported as a
// WriteError for the file it wraps.
type WriteErrorPass struct {
	w    io.Writer
	path string
	err  error
}

func NewWriteErrorPass(w io.Writer, path string) *WriteErrorPass {
	return &WriteErrorPass{w: w, path: path}
}

func (wep *WriteErrorPass) Write(b []byte) (int, error) {
	if wep.err != nil {
		return 0, wep.err
	}
	written := 0
	for written < len(b) {
		count, err := wep.w.Write(b[written:])
		if err == nil && count <= 0 {
			err = io.ErrShortWrite
		}
		if err != nil {
			wep.err = &WriteError{Path: wep.path, Err: err}
			return written, wep.err
		}
		written += count
	}
	return written, nil
}

// Write, ignoring the count. Check Err() once at the end
func (wep *WriteErrorPass) WritePass(b []byte) int {
	val, _ := wep.Write(b)
	return val
}

func (wep *WriteErrorPass) Err() error {
	return wep.err
}
