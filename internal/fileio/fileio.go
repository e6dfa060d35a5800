// Package fileio reads whole input files and writes whole output files for
// the huffpack tool.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffpack/fileio")

// ErrNotFound is returned when an input path does not exist.
var ErrNotFound = errors.New("file not found")

// IOError reports a failure to read or write a path for any reason other
// than the path not existing.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ReadFile returns the full contents of path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	log.Debugf("read %d bytes from %s", len(data), path)
	return data, nil
}

// WriteFile replaces path with data.  The data goes to a temporary file in
// the same directory, which is renamed over path only once it is complete,
// so a failed write never leaves a partial file at path.
func WriteFile(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	log.Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}
