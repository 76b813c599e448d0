package cryptography

import (
	"bytes"
	"fmt"
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
	"github.com/MGTheTrain/text-vault/internal/pkg/utils"
)

type keyLoader struct {
	stdin  io.Reader
	logger logger.Logger
}

// NewKeyLoader creates a KeyLoader. stdin backs the "-" path and may be nil
// when standard input is never used as a key source.
func NewKeyLoader(logger logger.Logger, stdin io.Reader) (cryptoalg.KeyLoader, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if stdin == nil {
		stdin = bytes.NewReader(nil)
	}

	return &keyLoader{
		stdin:  stdin,
		logger: logger,
	}, nil
}

// Load reads source to EOF and builds key material for alg in the given role.
func (l *keyLoader) Load(source io.Reader, alg crypto.Algorithm, role crypto.KeyRole) (*crypto.KeyMaterial, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: key source cannot be nil", crypto.ErrIO)
	}

	raw, err := utils.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}
	defer wipe(raw)

	return l.build(raw, alg, role)
}

// LoadFromPath opens path, or standard input for "-", and loads key material from it.
func (l *keyLoader) LoadFromPath(path string, alg crypto.Algorithm, role crypto.KeyRole) (*crypto.KeyMaterial, error) {
	raw, err := utils.ReadInput(path, l.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %q: %w", path, err)
	}
	defer wipe(raw)

	return l.build(raw, alg, role)
}

func (l *keyLoader) build(raw []byte, alg crypto.Algorithm, role crypto.KeyRole) (*crypto.KeyMaterial, error) {
	if !alg.IsValid() {
		return nil, fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, alg)
	}
	if !alg.AllowsRole(role) {
		return nil, fmt.Errorf("%w: %s keys cannot have role %s", crypto.ErrKeyRole, alg, role)
	}

	if alg.TextEncodedKeys() {
		raw = bytes.TrimRight(raw, " \t\r\n")
	}

	if len(raw) < crypto.KeySize {
		return nil, fmt.Errorf("%w: %s key needs %d bytes, got %d", crypto.ErrKeyTooShort, alg, crypto.KeySize, len(raw))
	}
	if len(raw) > crypto.KeySize {
		l.logger.Debug("Key source longer than ", crypto.KeySize, " bytes, using the leading bytes")
	}

	key, err := crypto.NewKeyMaterial(alg, role, raw[:crypto.KeySize])
	if err != nil {
		return nil, err
	}

	if alg == crypto.AlgorithmEd25519 && role == crypto.KeyRolePublic {
		if err := ValidateEd25519PublicKey(key.Bytes); err != nil {
			key.Zero()
			return nil, err
		}
	}

	l.logger.Debug("Loaded ", alg, " ", role, " key")
	return key, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
