package keys

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// GeneratedKeySet holds key material created in one generation call.
type GeneratedKeySet struct {
	KeyPairID       string
	Algorithm       crypto.Algorithm
	Keys            []*crypto.KeyMaterial
	DateTimeCreated time.Time
}

// Zero wipes every key of the set.
func (s *GeneratedKeySet) Zero() {
	if s == nil {
		return
	}
	for _, k := range s.Keys {
		k.Zero()
	}
}

// FileName returns the output file name for a key of the given algorithm and role:
// blake3.txt, ed25519.sk / ed25519.pk, chacha20poly1305.key.
func FileName(alg crypto.Algorithm, role crypto.KeyRole) (string, error) {
	switch alg {
	case crypto.AlgorithmBlake3:
		if role == crypto.KeyRoleSymmetric {
			return "blake3.txt", nil
		}
	case crypto.AlgorithmEd25519:
		switch role {
		case crypto.KeyRolePrivate:
			return "ed25519.sk", nil
		case crypto.KeyRolePublic:
			return "ed25519.pk", nil
		}
	case crypto.AlgorithmChaCha20Poly1305:
		if role == crypto.KeyRoleSymmetric {
			return "chacha20poly1305.key", nil
		}
	default:
		return "", fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, alg)
	}
	return "", fmt.Errorf("%w: %s keys cannot have role %s", crypto.ErrKeyRole, alg, role)
}
