package huffpack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code this package can represent.  A Huffman
// tree only grows deeper than this when the input holds tens of terabytes,
// far beyond what fits in memory.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the
	// most significant of the Size low-order bits, so Bits can be handed
	// straight to an MSB-first bit writer.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "size %d > MaxCodeSize %d", size, MaxCodeSize)
	return Code{Size: size, Bits: bits & sizeMask(size)}
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", str, MaxCodeSize)
	}
	var hc Code
	for _, ch := range str {
		switch ch {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", ch, str)
		}
	}
	return hc, nil
}

// Append returns this Code extended by one bit.
func (hc Code) Append(bit uint64) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code %s cannot grow past %d bits", hc, MaxCodeSize)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | bit&1}
}

// Bit returns the i'th bit of this Code, counting from the first.
func (hc Code) Bit(i byte) uint64 {
	assert.Assertf(i < hc.Size, "bit index %d out of range for %d-bit code", i, hc.Size)
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// HasPrefix returns true iff prefix is a prefix of this Code (or equal to it).
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

// GoString returns a Go expression that reconstructs this Code.
func (hc Code) GoString() string {
	var buf strings.Builder
	buf.WriteString("MakeCode(")
	buf.WriteString(strconv.FormatUint(uint64(hc.Size), 10))
	buf.WriteString(", 0x")
	buf.WriteString(strconv.FormatUint(hc.Bits, 16))
	buf.WriteString(")")
	return buf.String()
}

var (
	_ fmt.Stringer   = Code{}
	_ fmt.GoStringer = Code{}
)

func sizeMask(size byte) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << size) - 1
}
