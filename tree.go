package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses one node within a Tree.
type NodeID int32

// NoNode is returned by some functions to clearly indicate that no node is
// being returned.
const NoNode = NodeID(-1)

// Tree is a strict binary prefix-code tree.  Every node is either a leaf,
// which carries one Symbol, or an internal node with exactly two children.
//
// Nodes live in a single arena owned by the Tree and are addressed by
// NodeID; each node other than the root has exactly one parent.
//
type Tree struct {
	nodes []treeNode
	root  NodeID
}

type treeNode struct {
	freq   uint64
	left   NodeID
	right  NodeID
	symbol Symbol
	leaf   bool
}

// BuildTree constructs a Huffman tree from the given frequencies by
// repeatedly merging the two lowest-frequency nodes.  The first node
// extracted becomes the left child and the second becomes the right child.
//
// Ties are broken by creation order: leaves are created first, in ascending
// Symbol order, and each merged node is created after every node that
// exists before it.  The result is therefore fully determined by freqs.
//
// If freqs holds a single symbol, the tree is a single leaf.
//
func BuildTree(freqs *FrequencyTable) *Tree {
	numLeaves := freqs.Len()
	assert.Assertf(numLeaves > 0, "BuildTree called with an empty FrequencyTable")

	t := &Tree{
		nodes: make([]treeNode, 0, 2*numLeaves-1),
		root:  NoNode,
	}

	// Step 1: build a minheap with one leaf per symbol.

	h := freqHeap{tree: t, list: make([]NodeID, 0, numLeaves)}
	for symbol, freq := range freqs {
		if freq != 0 {
			h.list = append(h.list, t.addLeaf(Symbol(symbol), freq))
		}
	}
	h.Init()

	// Step 2: pop two nodes, merge them under a new internal node, and
	// push the new node back, until only the root is left.

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeID)
		b := heap.Pop(&h).(NodeID)

		// Compute freqSum using saturating addition
		freqA, freqB := t.nodes[a].freq, t.nodes[b].freq
		freqSum := freqA + freqB
		if freqSum < freqA {
			freqSum = math.MaxUint64
		}

		heap.Push(&h, t.addInternal(a, b, freqSum))
	}

	t.root = heap.Pop(&h).(NodeID)
	return t
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// IsLeaf returns true iff the given node is a leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.nodes[id].leaf
}

// Symbol returns the Symbol carried by a leaf.
func (t *Tree) Symbol(id NodeID) Symbol {
	assert.Assertf(t.nodes[id].leaf, "node %d is not a leaf", id)
	return t.nodes[id].symbol
}

// Left returns the left (0) child of an internal node, or NoNode for a leaf.
func (t *Tree) Left(id NodeID) NodeID {
	return t.nodes[id].left
}

// Right returns the right (1) child of an internal node, or NoNode for a leaf.
func (t *Tree) Right(id NodeID) NodeID {
	return t.nodes[id].right
}

// Child returns the child selected by bit: 0 for left, 1 for right.
func (t *Tree) Child(id NodeID, bit uint64) NodeID {
	if bit == 0 {
		return t.nodes[id].left
	}
	return t.nodes[id].right
}

// Freq returns the frequency recorded for a node at build time.  Trees read
// from a container carry no frequencies, so this is 0 for them.
func (t *Tree) Freq(id NodeID) uint64 {
	return t.nodes[id].freq
}

// NumNodes returns the number of nodes, leaves and internal nodes alike.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves.
func (t *Tree) NumLeaves() int {
	// A strict binary tree with n nodes has (n+1)/2 leaves.
	return (len(t.nodes) + 1) / 2
}

// MaxDepth returns the depth of the deepest leaf, where the root is at
// depth 0.
func (t *Tree) MaxDepth() int {
	var maxDepth int
	t.walk(func(id NodeID, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
	})
	return maxDepth
}

// Equal returns true iff both trees have the same shape and the same
// symbols on the same leaves.  Frequencies and arena layout are ignored.
func (t *Tree) Equal(other *Tree) bool {
	if t.NumNodes() != other.NumNodes() {
		return false
	}

	type pair struct {
		a NodeID
		b NodeID
	}

	stack := []pair{{t.root, other.root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		na, nb := t.nodes[top.a], other.nodes[top.b]
		if na.leaf != nb.leaf {
			return false
		}
		if na.leaf {
			if na.symbol != nb.symbol {
				return false
			}
			continue
		}
		stack = append(stack, pair{na.right, nb.right}, pair{na.left, nb.left})
	}
	return true
}

// String returns the tree as an S-expression, with leaves written as their
// decimal symbol value, e.g. "(97 (98 99))".
func (t *Tree) String() string {
	if t == nil || t.root == NoNode {
		return "()"
	}
	return string(t.appendString(nil, t.root))
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumNodes() = %d\n", t.NumNodes())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.NumLeaves())
	fmt.Fprintf(&buf, "\tMaxDepth() = %d\n", t.MaxDepth())
	fmt.Fprintf(&buf, "\tRoot() = %s\n", t.String())
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)

func (t *Tree) appendString(out []byte, id NodeID) []byte {
	node := t.nodes[id]
	if node.leaf {
		return strconv.AppendUint(out, uint64(node.symbol), 10)
	}
	out = append(out, '(')
	out = t.appendString(out, node.left)
	out = append(out, ' ')
	out = t.appendString(out, node.right)
	return append(out, ')')
}

func (t *Tree) addLeaf(symbol Symbol, freq uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		freq:   freq,
		left:   NoNode,
		right:  NoNode,
		symbol: symbol,
		leaf:   true,
	})
	return id
}

func (t *Tree) addInternal(left NodeID, right NodeID, freq uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		freq:  freq,
		left:  left,
		right: right,
	})
	return id
}

// walk visits every node in pre-order (node, left subtree, right subtree),
// passing each node's depth.  It uses an explicit stack, so arbitrarily
// deep trees read from untrusted input cannot exhaust the goroutine stack.
func (t *Tree) walk(visit func(id NodeID, depth int)) {
	type stackItem struct {
		id    NodeID
		depth int
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{t.root, 0})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(top.id, top.depth)

		node := t.nodes[top.id]
		if !node.leaf {
			stack = append(stack,
				stackItem{node.right, top.depth + 1},
				stackItem{node.left, top.depth + 1})
		}
	}
}

// type freqHeap {{{

type freqHeap struct {
	tree *Tree
	list []NodeID
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	fa, fb := h.tree.nodes[a].freq, h.tree.nodes[b].freq
	if fa != fb {
		return fa < fb
	}
	return a < b
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
