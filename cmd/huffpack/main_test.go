package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/huffpack/internal/runner"
)

func TestRunMenu_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	packed := filepath.Join(dir, "in.huff")
	output := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(input, []byte("she sells sea shells"), 0o644))

	var out strings.Builder
	err := runMenu(strings.NewReader("1\n"+input+"\n"+packed+"\n"), &out, runner.Options{})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Compression completed!")
	require.Contains(t, out.String(), "Compression Stats:")

	out.Reset()
	err = runMenu(strings.NewReader("2\n"+packed+"\n"+output+"\n"), &out, runner.Options{})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Decompression completed!")

	back, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, []byte("she sells sea shells"), back)
}

func TestRunMenu_Exit(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runMenu(strings.NewReader("3\n"), &out, runner.Options{}))
	require.Contains(t, out.String(), "Goodbye!")
}

func TestRunMenu_BadInput(t *testing.T) {
	var out strings.Builder
	require.Error(t, runMenu(strings.NewReader("9\n"), &out, runner.Options{}))
	require.ErrorIs(t, runMenu(strings.NewReader("1\n"), &out, runner.Options{}), io.ErrUnexpectedEOF)
}
