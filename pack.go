package huffpack

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Pack concatenates the code of every byte of data, in order, and packs the
// resulting bit sequence into bytes, most significant bit first.  The last
// byte is filled out with zero bits; pad reports how many (0 through 7).
//
// Pack fails with ErrNoCode if some byte of data has no code in ct.
//
func Pack(ct *CodeTable, data []byte) (packed []byte, pad byte, err error) {
	var buf bytes.Buffer
	buf.Grow(len(data)*int(ct.maxSize)/8 + 1)

	w := bitio.NewWriter(&buf)
	for _, b := range data {
		hc := ct.codes[b]
		if hc.Size == 0 {
			return nil, 0, fmt.Errorf("%w: %d", ErrNoCode, b)
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, 0, fmt.Errorf("huffpack: packing bits: %w", err)
		}
	}

	skipped, err := w.Align()
	if err != nil {
		return nil, 0, fmt.Errorf("huffpack: packing bits: %w", err)
	}
	assert.Assertf(skipped < 8, "bitio.Writer.Align skipped %d bits", skipped)
	return buf.Bytes(), skipped, nil
}

// Unpack reverses Pack.  It expands packed into bits, drops the last pad of
// them, and walks t from the root: left on 0, right on 1, emitting a leaf's
// symbol and returning to the root each time a leaf is reached.
//
// If t is a single leaf, every 0 bit emits that leaf's symbol.
//
// Unpack fails with ErrCorruptBitstream if the bits end anywhere other than
// at the root, or if they select a branch that t does not have.
//
func Unpack(t *Tree, pad byte, packed []byte) ([]byte, error) {
	if pad > 7 {
		return nil, fmt.Errorf("%w: padding of %d bits", ErrMalformedHeader, pad)
	}
	totalBits := uint64(len(packed)) * 8
	if uint64(pad) > totalBits {
		return nil, fmt.Errorf("%w: padding of %d bits exceeds %d-bit payload", ErrMalformedHeader, pad, totalBits)
	}
	numBits := totalBits - uint64(pad)

	out := make([]byte, 0, numBits/uint64(t.MaxDepth()+1))
	r := bitio.NewReader(bytes.NewReader(packed))

	singleLeaf := t.IsLeaf(t.root)
	current := t.root
	for i := uint64(0); i < numBits; i++ {
		set, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("huffpack: unpacking bit %d: %w", i, err)
		}

		if singleLeaf {
			if set {
				return nil, fmt.Errorf("%w: bit %d selects a branch of a single-leaf tree", ErrCorruptBitstream, i)
			}
			out = append(out, byte(t.nodes[current].symbol))
			continue
		}

		if set {
			current = t.nodes[current].right
		} else {
			current = t.nodes[current].left
		}
		if node := t.nodes[current]; node.leaf {
			out = append(out, byte(node.symbol))
			current = t.root
		}
	}

	if current != t.root {
		return nil, fmt.Errorf("%w: bitstream ends inside a code after %d symbols", ErrCorruptBitstream, len(out))
	}
	return out, nil
}
