//go:build unit
// +build unit

package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestVerifyFile(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(existing, []byte("hello"), 0600))

	assert.NoError(t, VerifyFile("-"))
	assert.NoError(t, VerifyFile(existing))
	assert.ErrorIs(t, VerifyFile("*"), ErrFileNotExist)
	assert.ErrorIs(t, VerifyFile("not_exist.txt"), ErrFileNotExist)
	assert.ErrorIs(t, VerifyFile(""), ErrFileNotExist)
}

func TestVerifyDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	assert.NoError(t, VerifyDir(dir))
	assert.Error(t, VerifyDir(file))
	assert.Error(t, VerifyDir(filepath.Join(dir, "missing")))
}

func TestReadInput(t *testing.T) {
	t.Run("Stdin", func(t *testing.T) {
		data, err := ReadInput("-", strings.NewReader("from stdin"))
		require.NoError(t, err)
		assert.Equal(t, []byte("from stdin"), data)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.txt")
		require.NoError(t, os.WriteFile(path, []byte("from file"), 0600))

		data, err := ReadInput(path, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, []byte("from file"), data)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := ReadInput(filepath.Join(t.TempDir(), "missing"), nil)
		assert.ErrorIs(t, err, crypto.ErrIO)
	})

	t.Run("ReadFailure", func(t *testing.T) {
		_, err := ReadInput("-", failingReader{})
		assert.ErrorIs(t, err, crypto.ErrIO)
		assert.Contains(t, err.Error(), "device unplugged")
	})
}
