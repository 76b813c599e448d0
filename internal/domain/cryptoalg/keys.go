package cryptoalg

import (
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// KeyLoader reads raw key material from files or streams.
type KeyLoader interface {
	// Load reads source to EOF and returns key material for the algorithm and role.
	// Sources longer than the key size are truncated; shorter sources fail.
	Load(source io.Reader, alg crypto.Algorithm, role crypto.KeyRole) (*crypto.KeyMaterial, error)

	// LoadFromPath opens path (or standard input for "-") and loads key material from it.
	LoadFromPath(path string, alg crypto.Algorithm, role crypto.KeyRole) (*crypto.KeyMaterial, error)
}

// KeyGenerator creates fresh key material.
type KeyGenerator interface {
	// Generate returns one key for symmetric algorithms and a private/public pair,
	// in that order, for asymmetric ones.
	Generate(alg crypto.Algorithm) ([]*crypto.KeyMaterial, error)
}

// PasswordOptions selects the length and character classes of a generated password.
type PasswordOptions struct {
	Length int  `mapstructure:"length" json:"length" validate:"min=4,max=128"`
	Upper  bool `mapstructure:"upper" json:"upper"`
	Lower  bool `mapstructure:"lower" json:"lower"`
	Number bool `mapstructure:"number" json:"number"`
	Symbol bool `mapstructure:"symbol" json:"symbol"`
}

// PasswordGenerator produces random passwords from a mixed alphabet.
type PasswordGenerator interface {
	Generate(opts PasswordOptions) (string, error)
}
