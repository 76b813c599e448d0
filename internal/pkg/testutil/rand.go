package testutil

import (
	"io"
	"math/rand/v2"
)

// DeterministicReader returns a reproducible byte stream seeded with seed.
// It stands in for crypto/rand in tests that need stable key material.
func DeterministicReader(seed byte) io.Reader {
	var s [32]byte
	for i := range s {
		s[i] = seed
	}
	return rand.NewChaCha8(s)
}

// ErrReader is an io.Reader that always fails with Err.
type ErrReader struct {
	Err error
}

func (r ErrReader) Read([]byte) (int, error) {
	return 0, r.Err
}
