// Package huffpack implements a lossless whole-file compressor based on
// Huffman coding.
//
// A compressed container is self-describing: it begins with the code tree
// that was built from the input's byte frequencies, so no external model is
// needed to decompress it.  The layout is:
//
//     [serialized tree]['\n'][padding bit count: 1 byte][packed bits ...]
//
// The tree is written in pre-order, one ASCII byte per marker: '0' for an
// internal node (followed by its left and right subtrees) and '1' for a leaf
// (followed by the leaf's raw symbol byte).  Packed bits are stored most
// significant bit first; the padding count says how many trailing zero bits
// of the last byte are not part of the stream.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffpack")
