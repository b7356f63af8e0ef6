package poke

import (
	"errors"
	"fmt"
)

var (
	ErrUsage     error = errors.New("At least one of --write and --read must be present")
	ErrOpen      error = errors.New("failed to open file")
	ErrWrite     error = errors.New("failed to write file")
	ErrRead      error = errors.New("failed to read file")
	ErrShortRead error = errors.New("short read")
)

// UsageError is a request that cannot run. It matches ErrUsage.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// FileError records a failed operation on the target file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("Failed to %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{e.kind(), e.Err}
}

func (e *FileError) kind() error {
	switch e.Op {
	case "open":
		return ErrOpen
	case "write":
		return ErrWrite
	default:
		return ErrRead
	}
}

// ShortReadError means the file returned fewer bytes than requested.
type ShortReadError struct {
	Path string
	Want int
	Got  int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("Error in reading file %s: expecting %d bytes, read back %d bytes",
		e.Path, e.Want, e.Got)
}

func (e *ShortReadError) Unwrap() error {
	return ErrShortRead
}
