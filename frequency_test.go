package huffpack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	freqs, err := CountFrequencies([]byte("aaabb"))
	require.NoError(t, err)
	require.Equal(t, uint64(3), freqs['a'])
	require.Equal(t, uint64(2), freqs['b'])
	require.Equal(t, 2, freqs.Len())
	require.Equal(t, uint64(5), freqs.Total())
	require.Equal(t, []Symbol{'a', 'b'}, freqs.Symbols())

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tLen() = 2\n",
		"\tTotal() = 5\n",
		"\tCount(97) = 3\n",
		"\tCount(98) = 2\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = freqs.Dump(&buf)
	require.Equal(t, expectDump, buf.String())
}

func TestCountFrequencies_HighBytes(t *testing.T) {
	// 0x80..0xff must count as themselves, not as negative values.
	freqs, err := CountFrequencies([]byte{0xff, 0x80, 0xff, 0x00})
	require.NoError(t, err)
	require.Equal(t, uint64(2), freqs[0xff])
	require.Equal(t, uint64(1), freqs[0x80])
	require.Equal(t, uint64(1), freqs[0x00])
	require.Equal(t, []Symbol{0x00, 0x80, 0xff}, freqs.Symbols())
}

func TestCountFrequencies_Empty(t *testing.T) {
	_, err := CountFrequencies(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = CountFrequencies([]byte{})
	require.ErrorIs(t, err, ErrEmptyInput)
}
