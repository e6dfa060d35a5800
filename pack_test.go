package huffpack

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func packForTest(t *testing.T, data []byte) (*Tree, []byte, byte) {
	t.Helper()
	freqs, err := CountFrequencies(data)
	require.NoError(t, err)
	tree := BuildTree(&freqs)
	packed, pad, err := Pack(GenerateCodes(tree), data)
	require.NoError(t, err)
	return tree, packed, pad
}

func TestPack(t *testing.T) {
	// Codes are b="0", a="1": "11100" plus three padding bits.
	_, packed, pad := packForTest(t, []byte("aaabb"))
	require.Equal(t, []byte{0xe0}, packed)
	require.Equal(t, byte(3), pad)
}

func TestPack_ByteAligned(t *testing.T) {
	_, packed, pad := packForTest(t, []byte("aaaabbbb"))
	require.Len(t, packed, 1)
	require.Equal(t, byte(0), pad)
}

func TestPack_NoCode(t *testing.T) {
	freqs, err := CountFrequencies([]byte("ab"))
	require.NoError(t, err)
	_, _, err = Pack(GenerateCodes(BuildTree(&freqs)), []byte("abc"))
	require.ErrorIs(t, err, ErrNoCode)
}

func TestPack_PaddingBound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		data := make([]byte, 1+rng.Intn(300))
		alphabet := 1 + rng.Intn(NumSymbols)
		for j := range data {
			data[j] = byte(rng.Intn(alphabet))
		}

		freqs, err := CountFrequencies(data)
		require.NoError(t, err)
		ct := GenerateCodes(BuildTree(&freqs))
		bits, err := ct.EncodedSize(&freqs)
		require.NoError(t, err)

		packed, pad, err := Pack(ct, data)
		require.NoError(t, err)
		require.LessOrEqual(t, pad, byte(7))
		require.Equal(t, uint64(0), (bits+uint64(pad))%8)
		require.Equal(t, (bits+uint64(pad))/8, uint64(len(packed)))
	}
}

func TestUnpack(t *testing.T) {
	tree, packed, pad := packForTest(t, []byte("aaabb"))
	out, err := Unpack(tree, pad, packed)
	require.NoError(t, err)
	require.Equal(t, []byte("aaabb"), out)
}

func TestUnpack_SingleLeaf(t *testing.T) {
	data := []byte(strings.Repeat("A", 1000))
	tree, packed, pad := packForTest(t, data)
	require.Len(t, packed, 125)
	require.Equal(t, byte(0), pad)

	out, err := Unpack(tree, pad, packed)
	require.NoError(t, err)
	require.Equal(t, data, out)

	_, err = Unpack(tree, 7, []byte{0x80})
	require.ErrorIs(t, err, ErrCorruptBitstream)
}

func TestUnpack_EndsInsideCode(t *testing.T) {
	tree, err := ReadTree(strings.NewReader("01a01b1c"))
	require.NoError(t, err)

	out, err := Unpack(tree, 0, []byte{0x80})
	require.NoError(t, err)
	require.Equal(t, []byte("baaaaaa"), out)

	// Only the leading "1" bit remains, which stops at an internal node.
	_, err = Unpack(tree, 7, []byte{0x80})
	require.ErrorIs(t, err, ErrCorruptBitstream)
}

func TestUnpack_BadPadding(t *testing.T) {
	tree, packed, _ := packForTest(t, []byte("aaabb"))
	_, err := Unpack(tree, 8, packed)
	require.ErrorIs(t, err, ErrMalformedHeader)

	_, err = Unpack(tree, 1, nil)
	require.ErrorIs(t, err, ErrMalformedHeader)
}
