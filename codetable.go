package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol present in a Tree to its prefix code.
type CodeTable struct {
	codes   [NumSymbols]Code
	count   int
	minSize byte
	maxSize byte
}

// GenerateCodes walks the tree and assigns each leaf the path leading to
// it: "0" for every left descent and "1" for every right descent.
//
// A tree that is a single leaf has an empty path, so that leaf is given the
// one-bit code "0" instead.
//
func GenerateCodes(t *Tree) *CodeTable {
	ct := &CodeTable{}

	if t.IsLeaf(t.root) {
		ct.set(t.Symbol(t.root), MakeCode(1, 0))
		return ct
	}

	// Pre-order guarantees that a node's path is known before either of
	// its children is visited.
	paths := make([]Code, t.NumNodes())
	t.walk(func(id NodeID, depth int) {
		path := paths[id]
		assert.Assertf(int(path.Size) == depth, "path %s does not match depth %d", path, depth)

		node := t.nodes[id]
		if node.leaf {
			ct.set(node.symbol, path)
			return
		}
		paths[node.left] = path.Append(0)
		paths[node.right] = path.Append(1)
	})
	return ct
}

// Encode returns the code for a Symbol.  The returned Code has Size 0 if
// the Symbol does not appear in the tree.
func (ct *CodeTable) Encode(symbol Symbol) Code {
	return ct.codes[symbol]
}

// Len returns the number of symbols that have a code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// EncodedSize returns the number of bits needed to encode an input with the
// given frequencies, or ErrNoCode if one of its symbols has no code.
func (ct *CodeTable) EncodedSize(freqs *FrequencyTable) (uint64, error) {
	var total uint64
	for symbol, freq := range freqs {
		if freq == 0 {
			continue
		}
		hc := ct.codes[symbol]
		if hc.Size == 0 {
			return 0, fmt.Errorf("%w: %d", ErrNoCode, symbol)
		}
		total += freq * uint64(hc.Size)
	}
	return total, nil
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := ct.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	assert.Assertf(hc.Size != 0, "empty code for symbol %d", symbol)
	assert.Assertf(ct.codes[symbol].Size == 0, "duplicate leaf for symbol %d", symbol)

	ct.codes[symbol] = hc
	if ct.count == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.count++
}
