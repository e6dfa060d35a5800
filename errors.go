package huffpack

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when compression is requested for a
	// zero-length input.
	ErrEmptyInput = errors.New("huffpack: empty input")

	// ErrTruncatedTree is returned when the tree section of a container
	// ends before a complete tree has been read.
	ErrTruncatedTree = errors.New("huffpack: truncated code tree")

	// ErrMalformedTree is returned when the tree section contains an
	// unknown marker or more nodes than any 256-symbol tree can have.
	ErrMalformedTree = errors.New("huffpack: malformed code tree")

	// ErrMalformedHeader is returned when the separator or the padding
	// count following the tree is missing or out of range.
	ErrMalformedHeader = errors.New("huffpack: malformed container header")

	// ErrCorruptBitstream is returned when the packed bits end in the
	// middle of a code, or select a branch the tree does not have.
	ErrCorruptBitstream = errors.New("huffpack: corrupt bitstream")

	// ErrNoCode is returned when packing a byte that has no code.
	ErrNoCode = errors.New("huffpack: no code for symbol")
)
