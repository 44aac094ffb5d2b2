package lif

import (
	"errors"
	"fmt"
	"io"
)

// Which file an OpenError is about
type OpenRole int

const (
	RoleInput      OpenRole = iota // The file being scanned
	RoleCopySource                 // The second handle used for positioned copies
	RoleOutput                     // An extracted image (or preview)
)

func (r OpenRole) String() string {
	switch r {
	case RoleInput:
		return "input file"
	case RoleCopySource:
		return "input file for copy"
	case RoleOutput:
		return "output file"
	}
	return "file"
}

type OpenError struct {
	Path string
	Role OpenRole
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("Unable to open %s %s: %s", e.Role, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// A read failed or the input ran out. Offset is the stream position at the
// time of the failure.
type ReadError struct {
	Offset uint64
	Err    error
}

func (e *ReadError) Error() string {
	if errors.Is(e.Err, io.EOF) || errors.Is(e.Err, io.ErrUnexpectedEOF) {
		return fmt.Sprintf("Unexpected end of input file at offset %d", e.Offset)
	}
	return fmt.Sprintf("Unable to read data from input file at offset %d: %s", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// True when the error is just the scan reaching the end of the input
func (e *ReadError) IsEndOfInput() bool {
	return errors.Is(e.Err, io.EOF)
}

type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Unable to write to output file %s: %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

type SeekError struct {
	Offset uint64
	Err    error
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("Unable to seek to offset %d of input file: %s", e.Offset, e.Err)
}

func (e *SeekError) Unwrap() error { return e.Err }

// No input was given on the command line
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

const (
	ExitOk          = 0
	ExitArgument    = 1
	ExitOpenInput   = 2
	ExitOpenCopy    = 3
	ExitOpenOutput  = 4
	ExitRead        = 5
	ExitWrite       = 6
	ExitSeek        = 7
	ExitUnspecified = 1
)

// Map any error produced by this package onto the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOk
	}
	var argErr *ArgumentError
	var openErr *OpenError
	var readErr *ReadError
	var writeErr *WriteError
	var seekErr *SeekError
	switch {
	case errors.As(err, &argErr):
		return ExitArgument
	case errors.As(err, &openErr):
		switch openErr.Role {
		case RoleInput:
			return ExitOpenInput
		case RoleCopySource:
			return ExitOpenCopy
		default:
			return ExitOpenOutput
		}
	case errors.As(err, &seekErr):
		return ExitSeek
	case errors.As(err, &writeErr):
		return ExitWrite
	case errors.As(err, &readErr):
		return ExitRead
	}
	return ExitUnspecified
}
