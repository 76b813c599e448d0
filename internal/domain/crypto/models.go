package crypto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeyRole describes how a piece of key material may be used.
type KeyRole string

const (
	// KeyRoleSymmetric is a shared secret used for both directions of an operation.
	KeyRoleSymmetric KeyRole = "symmetric"
	// KeyRolePrivate is a signing key.
	KeyRolePrivate KeyRole = "private"
	// KeyRolePublic is a verifying key.
	KeyRolePublic KeyRole = "public"
)

// AllowsRole reports whether keys of the given role exist for the algorithm.
func (a Algorithm) AllowsRole(role KeyRole) bool {
	switch a.Kind() {
	case KindKeyedHash, KindAuthenticatedCipher:
		return role == KeyRoleSymmetric
	case KindAsymmetricSignature:
		return role == KeyRolePrivate || role == KeyRolePublic
	default:
		return false
	}
}

// KeyMaterial is raw key bytes tagged with the algorithm and role they belong to.
// An instance owns its byte slice; callers should Zero it once the operation completes.
type KeyMaterial struct {
	Algorithm Algorithm `validate:"required,oneof=blake3 ed25519 chacha20poly1305"`
	Role      KeyRole   `validate:"required,oneof=symmetric private public"`
	Bytes     []byte    `validate:"required"`
}

// NewKeyMaterial copies key into a new KeyMaterial and validates it.
func NewKeyMaterial(alg Algorithm, role KeyRole, key []byte) (*KeyMaterial, error) {
	owned := make([]byte, len(key))
	copy(owned, key)

	km := &KeyMaterial{Algorithm: alg, Role: role, Bytes: owned}
	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}

// Validate for validating KeyMaterial struct
func (k *KeyMaterial) Validate() error {
	validate := validator.New()

	if err := validate.Struct(k); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: validation failed: %v", ErrKeyFormat, messages)
		}
		return fmt.Errorf("%w: validation error: %v", ErrKeyFormat, err)
	}

	if !k.Algorithm.AllowsRole(k.Role) {
		return fmt.Errorf("%w: %s keys cannot have role %s", ErrKeyRole, k.Algorithm, k.Role)
	}

	if len(k.Bytes) != KeySize {
		return fmt.Errorf("%w: %s key must be %d bytes, got %d", ErrKeyFormat, k.Algorithm, KeySize, len(k.Bytes))
	}

	return nil
}

// Zero overwrites the key bytes.
func (k *KeyMaterial) Zero() {
	if k == nil {
		return
	}
	for i := range k.Bytes {
		k.Bytes[i] = 0
	}
}
