package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCompression_WriteTo(t *testing.T) {
	s := Compression{
		InputSize:   2048,
		OutputSize:  512,
		TreeNodes:   9,
		MaxDepth:    3,
		Elapsed:     1500 * time.Microsecond,
		InputDigest: 0xdeadbeef,
		Verified:    true,
	}
	require.InDelta(t, 75.0, s.Ratio(), 1e-9)

	expect := strings.Join([]string{
		"\n",
		"Compression Stats:\n",
		"   Input Size        : 2.00 KB\n",
		"   Compressed Size   : 0.50 KB\n",
		"   Compression Ratio : 75.00 %\n",
		"   Huffman Tree Nodes: 9, Max Depth: 3\n",
		"   Input Digest      : 00000000deadbeef\n",
		"   Round Trip        : verified\n",
		"   Time Taken        : 1 ms\n",
		"\n",
	}, "")

	var buf strings.Builder
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, expect, buf.String())
}

func TestCompression_Ratio(t *testing.T) {
	require.Equal(t, 0.0, Compression{}.Ratio())
	require.Less(t, Compression{InputSize: 1, OutputSize: 5}.Ratio(), 0.0)
}

func TestDecompression_WriteTo(t *testing.T) {
	s := Decompression{
		InputSize:    512,
		OutputSize:   2048,
		Elapsed:      2 * time.Millisecond,
		OutputDigest: 0x1,
	}

	expect := strings.Join([]string{
		"\n",
		"Decompression Stats:\n",
		"   Compressed Size : 0.50 KB\n",
		"   Output Size     : 2.00 KB\n",
		"   Output Digest   : 0000000000000001\n",
		"   Time Taken      : 2 ms\n",
		"\n",
	}, "")

	var buf strings.Builder
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, expect, buf.String())
}
