package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// stdPath is the path value that selects the standard streams.
const stdPath = "-"

// OpenInput opens path for reading. An empty path or "-" selects os.Stdin,
// which is returned with a no-op Close.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == stdPath {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return f, nil
}

// WriteOutput writes data to path. An empty path or "-" selects os.Stdout.
//
// Files are replaced atomically: data goes to a temporary file in the same
// directory, which is then renamed over path. A failed write leaves any
// existing file at path untouched.
func WriteOutput(path string, data []byte) error {
	if path == "" || path == stdPath {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
