package huffpack

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
)

const separator = '\n'

// Container is the parsed form of a compressed artifact.
type Container struct {
	// Tree is the code tree that Payload was packed with.
	Tree *Tree

	// Padding is the number of zero bits (0 through 7) appended to the
	// last byte of Payload.
	Padding byte

	// Payload holds the packed bits, most significant bit first.
	Payload []byte
}

// MarshalBinary fulfills encoding.BinaryMarshaler.
func (c Container) MarshalBinary() ([]byte, error) {
	if c.Tree == nil {
		return nil, errors.New("huffpack: container has no tree")
	}
	if c.Padding > 7 {
		return nil, fmt.Errorf("%w: padding of %d bits", ErrMalformedHeader, c.Padding)
	}
	out := make([]byte, 0, SerializedTreeSize(c.Tree)+2+len(c.Payload))
	out = AppendTree(out, c.Tree)
	out = append(out, separator, c.Padding)
	out = append(out, c.Payload...)
	return out, nil
}

// UnmarshalBinary fulfills encoding.BinaryUnmarshaler.  It validates the
// header, but not the payload; use Decode for that.
func (c *Container) UnmarshalBinary(raw []byte) error {
	r := bytes.NewReader(raw)

	tree, err := ReadTree(r)
	if err != nil {
		return err
	}

	sep, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("%w: missing separator after tree", ErrMalformedHeader)
	}
	if sep != separator {
		return fmt.Errorf("%w: expected separator 0x%02x after tree, got 0x%02x", ErrMalformedHeader, separator, sep)
	}

	pad, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("%w: missing padding count", ErrMalformedHeader)
	}
	if pad > 7 {
		return fmt.Errorf("%w: padding of %d bits", ErrMalformedHeader, pad)
	}

	payload := raw[len(raw)-r.Len():]
	if pad != 0 && len(payload) == 0 {
		return fmt.Errorf("%w: padding of %d bits with empty payload", ErrMalformedHeader, pad)
	}

	*c = Container{
		Tree:    tree,
		Padding: pad,
		Payload: payload,
	}
	return nil
}

// Decode unpacks the payload with the container's tree.
func (c Container) Decode() ([]byte, error) {
	return Unpack(c.Tree, c.Padding, c.Payload)
}

var (
	_ encoding.BinaryMarshaler   = Container{}
	_ encoding.BinaryUnmarshaler = (*Container)(nil)
)

// Encoder holds the static model computed for one input: its frequencies,
// the Huffman tree built from them, and the resulting code table.
type Encoder struct {
	freqs FrequencyTable
	tree  *Tree
	codes *CodeTable
}

// Init initializes this Encoder from the byte frequencies of data.  It
// fails with ErrEmptyInput if data is empty.
func (e *Encoder) Init(data []byte) error {
	freqs, err := CountFrequencies(data)
	if err != nil {
		return err
	}
	tree := BuildTree(&freqs)
	*e = Encoder{
		freqs: freqs,
		tree:  tree,
		codes: GenerateCodes(tree),
	}
	return nil
}

// Encode produces the complete container for data.  data should be the
// same input that Init was given; any byte that Init did not see fails
// with ErrNoCode.
func (e *Encoder) Encode(data []byte) ([]byte, error) {
	payload, pad, err := Pack(e.codes, data)
	if err != nil {
		return nil, err
	}
	return Container{Tree: e.tree, Padding: pad, Payload: payload}.MarshalBinary()
}

// Frequencies returns the frequency table computed by Init.
func (e *Encoder) Frequencies() *FrequencyTable {
	return &e.freqs
}

// Tree returns the tree computed by Init.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// Codes returns the code table computed by Init.
func (e *Encoder) Codes() *CodeTable {
	return e.codes
}

// Dump writes a programmer-readable debugging dump of the Encoder's
// frequencies, tree, and codes to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	_, _ = e.freqs.Dump(&buf)
	_, _ = e.tree.Dump(&buf)
	_, _ = e.codes.Dump(&buf)
	return buf.WriteTo(w)
}

// Compress returns the container for data.  It fails with ErrEmptyInput if
// data is empty.
func Compress(data []byte) ([]byte, error) {
	var e Encoder
	if err := e.Init(data); err != nil {
		return nil, err
	}
	out, err := e.Encode(data)
	if err != nil {
		return nil, err
	}
	log.Debugf("compressed %d bytes to %d: %d symbols, %d tree nodes, codes %d..%d bits",
		len(data), len(out), e.codes.Len(), e.tree.NumNodes(), e.codes.MinSize(), e.codes.MaxSize())
	return out, nil
}

// Decompress reconstructs the original bytes from a container.
func Decompress(raw []byte) ([]byte, error) {
	var c Container
	if err := c.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	out, err := c.Decode()
	if err != nil {
		return nil, err
	}
	log.Debugf("decompressed %d bytes to %d: %d tree nodes, %d padding bits",
		len(raw), len(out), c.Tree.NumNodes(), c.Padding)
	return out, nil
}
