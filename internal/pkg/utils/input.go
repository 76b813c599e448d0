package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// ErrFileNotExist is returned by VerifyFile for paths that do not exist.
var ErrFileNotExist = errors.New("file does not exist")

// VerifyFile accepts "-" (standard input) or a path to an existing file.
func VerifyFile(path string) error {
	if path == crypto.StdinSentinel {
		return nil
	}
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrFileNotExist)
	}
	if _, err := os.Stat(filepath.Clean(path)); err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotExist, path)
	}
	return nil
}

// VerifyDir accepts a path to an existing directory.
func VerifyDir(path string) error {
	info, err := os.Stat(filepath.Clean(path))
	if err != nil || !info.IsDir() {
		return fmt.Errorf("path %q does not exist or is not a directory", path)
	}
	return nil
}

// OpenInput opens path for reading, or returns stdin wrapped so that closing it is a no-op
// when path is "-".
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == crypto.StdinSentinel {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrIO, err)
	}
	return f, nil
}

// ReadAll reads r to EOF, tagging failures with crypto.ErrIO.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrIO, err)
	}
	return data, nil
}

// ReadInput opens path (or stdin for "-"), reads it fully and closes it on every path.
func ReadInput(path string, stdin io.Reader) (data []byte, err error) {
	rc, err := OpenInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", crypto.ErrIO, cerr)
		}
	}()

	return ReadAll(rc)
}
