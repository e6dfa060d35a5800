// Package stats records and prints the verbose report of one compression
// or decompression run.
package stats

import (
	"bytes"
	"fmt"
	"io"
	"time"
)

// Compression describes one completed compression.
type Compression struct {
	InputSize   int
	OutputSize  int
	TreeNodes   int
	MaxDepth    int
	Elapsed     time.Duration
	InputDigest uint64
	Verified    bool
}

// Ratio returns the space saved, as a percentage of the input size.  It is
// negative when the output is larger than the input.
func (s Compression) Ratio() float64 {
	if s.InputSize == 0 {
		return 0
	}
	return 100 * (1 - float64(s.OutputSize)/float64(s.InputSize))
}

// WriteTo writes the human-readable report to w.
func (s Compression) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("\nCompression Stats:\n")
	fmt.Fprintf(&buf, "   Input Size        : %s\n", kilobytes(s.InputSize))
	fmt.Fprintf(&buf, "   Compressed Size   : %s\n", kilobytes(s.OutputSize))
	fmt.Fprintf(&buf, "   Compression Ratio : %.2f %%\n", s.Ratio())
	fmt.Fprintf(&buf, "   Huffman Tree Nodes: %d, Max Depth: %d\n", s.TreeNodes, s.MaxDepth)
	fmt.Fprintf(&buf, "   Input Digest      : %016x\n", s.InputDigest)
	if s.Verified {
		buf.WriteString("   Round Trip        : verified\n")
	}
	fmt.Fprintf(&buf, "   Time Taken        : %d ms\n\n", s.Elapsed.Milliseconds())
	return buf.WriteTo(w)
}

// Decompression describes one completed decompression.
type Decompression struct {
	InputSize    int
	OutputSize   int
	Elapsed      time.Duration
	OutputDigest uint64
}

// WriteTo writes the human-readable report to w.
func (s Decompression) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("\nDecompression Stats:\n")
	fmt.Fprintf(&buf, "   Compressed Size : %s\n", kilobytes(s.InputSize))
	fmt.Fprintf(&buf, "   Output Size     : %s\n", kilobytes(s.OutputSize))
	fmt.Fprintf(&buf, "   Output Digest   : %016x\n", s.OutputDigest)
	fmt.Fprintf(&buf, "   Time Taken      : %d ms\n\n", s.Elapsed.Milliseconds())
	return buf.WriteTo(w)
}

var (
	_ io.WriterTo = Compression{}
	_ io.WriterTo = Decompression{}
)

func kilobytes(n int) string {
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}
