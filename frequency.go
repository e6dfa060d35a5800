package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable counts the occurrences of each Symbol in one input.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies scans data once and returns the exact number of
// occurrences of every byte value.  It fails with ErrEmptyInput if data is
// empty.
func CountFrequencies(data []byte) (FrequencyTable, error) {
	var freqs FrequencyTable
	if len(data) == 0 {
		return freqs, ErrEmptyInput
	}
	for _, b := range data {
		freqs[b]++
	}
	return freqs, nil
}

// Len returns the number of distinct symbols with a non-zero count.
func (freqs *FrequencyTable) Len() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freqs *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += freq
	}
	return sum
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (freqs *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, freqs.Len())
	for symbol, freq := range freqs {
		if freq != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table's non-zero
// entries to the given writer.
func (freqs *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", freqs.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", freqs.Total())
	for _, symbol := range freqs.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, freqs[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
