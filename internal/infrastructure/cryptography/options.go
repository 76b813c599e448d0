package cryptography

import (
	"crypto/rand"
	"io"
)

// Option configures processors and generators that consume entropy.
type Option func(*options)

type options struct {
	rand io.Reader
}

// WithRandReader replaces crypto/rand as the entropy source, e.g. with a seeded reader in tests.
func WithRandReader(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{rand: rand.Reader}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
