package huffpack

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendTree(t *testing.T) {
	freqs := makeTestFrequencies()
	tree := BuildTree(&freqs)

	expect := []byte("01\x05001\x021\x03001\x001\x011\x04")
	actual := AppendTree(nil, tree)
	require.Equal(t, expect, actual)
	require.Equal(t, len(expect), SerializedTreeSize(tree))
}

func TestAppendTree_SingleLeaf(t *testing.T) {
	freqs, err := CountFrequencies([]byte("AAAA"))
	require.NoError(t, err)
	require.Equal(t, []byte("1A"), AppendTree(nil, BuildTree(&freqs)))
}

func TestReadTree(t *testing.T) {
	r := bytes.NewReader([]byte("01\x05001\x021\x03001\x001\x011\x04\nrest"))
	tree, err := ReadTree(r)
	require.NoError(t, err)
	require.Equal(t, "(5 ((2 3) ((0 1) 4)))", tree.String())

	// ReadTree must stop right after the last leaf.
	require.Equal(t, len("\nrest"), r.Len())
}

func TestReadTree_LeafSymbolsLookLikeMarkers(t *testing.T) {
	freqs, err := CountFrequencies([]byte("001111\n\n\n"))
	require.NoError(t, err)
	tree := BuildTree(&freqs)

	decoded, err := ReadTree(bytes.NewReader(AppendTree(nil, tree)))
	require.NoError(t, err)
	require.True(t, tree.Equal(decoded))
}

func TestReadTree_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		var freqs FrequencyTable
		numSymbols := 1 + rng.Intn(NumSymbols)
		for j := 0; j < numSymbols; j++ {
			freqs[rng.Intn(NumSymbols)] += uint64(1 + rng.Intn(1<<16))
		}
		tree := BuildTree(&freqs)

		decoded, err := ReadTree(bytes.NewReader(AppendTree(nil, tree)))
		require.NoError(t, err)
		require.True(t, tree.Equal(decoded), "expected %s, got %s", tree, decoded)
		require.Equal(t, tree.MaxDepth(), decoded.MaxDepth())
	}
}

func TestReadTree_Truncated(t *testing.T) {
	freqs := makeTestFrequencies()
	raw := AppendTree(nil, BuildTree(&freqs))

	for n := 0; n < len(raw); n++ {
		_, err := ReadTree(bytes.NewReader(raw[:n]))
		require.ErrorIs(t, err, ErrTruncatedTree, "prefix of %d bytes", n)
	}
}

func TestReadTree_SeparatorInsteadOfMarker(t *testing.T) {
	_, err := ReadTree(bytes.NewReader([]byte("01a\n\x00")))
	require.ErrorIs(t, err, ErrTruncatedTree)
}

func TestReadTree_Malformed(t *testing.T) {
	_, err := ReadTree(bytes.NewReader([]byte("0x")))
	require.ErrorIs(t, err, ErrMalformedTree)

	// 600 internal markers cannot belong to any 256-symbol tree.
	_, err = ReadTree(bytes.NewReader(bytes.Repeat([]byte{'0'}, 600)))
	require.ErrorIs(t, err, ErrMalformedTree)
}
