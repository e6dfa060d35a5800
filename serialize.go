package huffpack

import (
	"errors"
	"fmt"
	"io"
)

const (
	internalMarker = '0'
	leafMarker     = '1'
)

// AppendTree appends the serialized form of t to dst and returns the
// extended slice.
//
// The tree is written in pre-order.  An internal node is the byte '0'
// followed by its left and then its right subtree; a leaf is the byte '1'
// followed by its raw symbol byte.  The encoding is self-delimiting.
//
func AppendTree(dst []byte, t *Tree) []byte {
	t.walk(func(id NodeID, depth int) {
		node := t.nodes[id]
		if node.leaf {
			dst = append(dst, leafMarker, byte(node.symbol))
		} else {
			dst = append(dst, internalMarker)
		}
	})
	return dst
}

// SerializedTreeSize returns len(AppendTree(nil, t)) without building it.
func SerializedTreeSize(t *Tree) int {
	// One marker per node, plus one symbol byte per leaf.
	return t.NumNodes() + t.NumLeaves()
}

// ReadTree reads one serialized tree from r, consuming exactly the bytes
// that AppendTree wrote for it.
//
// It fails with ErrTruncatedTree if r runs out before the tree is
// complete, and with ErrMalformedTree if it meets a byte that is not a
// marker or the tree grows larger than any 256-symbol tree can be.
//
func ReadTree(r io.ByteReader) (*Tree, error) {
	t := &Tree{root: NoNode}

	// Each stackItem is an internal node still waiting for children:
	//   x=0 → neither child has been read yet
	//   x=1 → the left child has been read
	type stackItem struct {
		id NodeID
		x  byte
	}

	var stack []stackItem
	for {
		marker, err := readTreeByte(r, len(t.nodes))
		if err != nil {
			return nil, err
		}

		var id NodeID
		switch marker {
		case leafMarker:
			symbol, err := readTreeByte(r, len(t.nodes))
			if err != nil {
				return nil, err
			}
			id = t.addLeaf(Symbol(symbol), 0)

		case internalMarker:
			id = t.addInternal(NoNode, NoNode, 0)

		case separator:
			// The tree section was cut short and the container's
			// separator took the place of the next marker.
			return nil, fmt.Errorf("%w: separator reached after %d nodes", ErrTruncatedTree, len(t.nodes))

		default:
			return nil, fmt.Errorf("%w: unexpected byte 0x%02x at node %d", ErrMalformedTree, marker, len(t.nodes))
		}

		if len(t.nodes) > maxTreeNodes {
			return nil, fmt.Errorf("%w: more than %d nodes", ErrMalformedTree, maxTreeNodes)
		}

		if len(stack) == 0 {
			t.root = id
		} else {
			top := &stack[len(stack)-1]
			if top.x == 0 {
				t.nodes[top.id].left = id
			} else {
				t.nodes[top.id].right = id
			}
			top.x++
		}

		if marker == internalMarker {
			stack = append(stack, stackItem{id: id})
			continue
		}

		for len(stack) != 0 && stack[len(stack)-1].x == 2 {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return t, nil
		}
	}
}

func readTreeByte(r io.ByteReader, nodesSoFar int) (byte, error) {
	b, err := r.ReadByte()
	if err == nil {
		return b, nil
	}
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: input ended after %d nodes", ErrTruncatedTree, nodesSoFar)
	}
	return 0, fmt.Errorf("huffpack: reading code tree: %w", err)
}
