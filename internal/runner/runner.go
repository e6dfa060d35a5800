// Package runner implements the huffpack tool's file-level operations on
// top of the codec: read the input, transform it, and write the output
// only once the whole operation has succeeded.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/fileio"
	"github.com/chronos-tachyon/huffpack/internal/stats"
)

var log = logging.MustGetLogger("huffpack/runner")

// ErrVerifyFailed is returned when a freshly compressed container does not
// decompress back to the input.
var ErrVerifyFailed = errors.New("round-trip verification failed")

// Options controls one Compress or Decompress call.
type Options struct {
	// Verbose prints a stats report to Stats after a successful run.
	Verbose bool

	// Verify decompresses each container in memory before it is written
	// and compares digests with the input.
	Verify bool

	// Stats receives the verbose report.  Nil means os.Stdout.
	Stats io.Writer
}

func (opts Options) statsWriter() io.Writer {
	if opts.Stats == nil {
		return os.Stdout
	}
	return opts.Stats
}

// Compress compresses inputPath into outputPath.  Nothing is written to
// outputPath unless compression succeeds.
func Compress(inputPath string, outputPath string, opts Options) (*stats.Compression, error) {
	start := time.Now()

	data, err := fileio.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	var e huffpack.Encoder
	if err := e.Init(data); err != nil {
		return nil, fmt.Errorf("compress %s: %w", inputPath, err)
	}
	out, err := e.Encode(data)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", inputPath, err)
	}

	digest := xxhash.Sum64(data)
	if opts.Verify {
		if err := verify(out, digest); err != nil {
			return nil, fmt.Errorf("compress %s: %w", inputPath, err)
		}
	}

	if err := fileio.WriteFile(outputPath, out); err != nil {
		return nil, err
	}

	s := &stats.Compression{
		InputSize:   len(data),
		OutputSize:  len(out),
		TreeNodes:   e.Tree().NumNodes(),
		MaxDepth:    e.Tree().MaxDepth(),
		Elapsed:     time.Since(start),
		InputDigest: digest,
		Verified:    opts.Verify,
	}
	log.Infof("compressed %s (%d bytes) to %s (%d bytes)", inputPath, s.InputSize, outputPath, s.OutputSize)

	if opts.Verbose {
		if _, err := s.WriteTo(opts.statsWriter()); err != nil {
			return s, fmt.Errorf("writing stats: %w", err)
		}
	}
	return s, nil
}

// Decompress decompresses inputPath into outputPath.  Nothing is written
// to outputPath unless decompression succeeds.
func Decompress(inputPath string, outputPath string, opts Options) (*stats.Decompression, error) {
	start := time.Now()

	raw, err := fileio.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	out, err := huffpack.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", inputPath, err)
	}

	if err := fileio.WriteFile(outputPath, out); err != nil {
		return nil, err
	}

	s := &stats.Decompression{
		InputSize:    len(raw),
		OutputSize:   len(out),
		Elapsed:      time.Since(start),
		OutputDigest: xxhash.Sum64(out),
	}
	log.Infof("decompressed %s (%d bytes) to %s (%d bytes)", inputPath, s.InputSize, outputPath, s.OutputSize)

	if opts.Verbose {
		if _, err := s.WriteTo(opts.statsWriter()); err != nil {
			return s, fmt.Errorf("writing stats: %w", err)
		}
	}
	return s, nil
}

func verify(container []byte, digest uint64) error {
	back, err := huffpack.Decompress(container)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	if got := xxhash.Sum64(back); got != digest {
		return fmt.Errorf("%w: digest %016x, expected %016x", ErrVerifyFailed, got, digest)
	}
	log.Debugf("verified round trip, digest %016x", digest)
	return nil
}
