package validators

import (
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// Tags registered by RegisterTextValidations.
const (
	TagTextAlgorithm       = "text_algorithm"
	TagTextSignAlgorithm   = "text_sign_algorithm"
	TagTextCipherAlgorithm = "text_cipher_algorithm"
)

// AlgorithmValidation validates that the field holds a known, case-sensitive algorithm tag.
func AlgorithmValidation(fl validator.FieldLevel) bool {
	_, err := crypto.ParseAlgorithm(fl.Field().String())
	return err == nil
}

// SignAlgorithmValidation validates that the field names an algorithm that can sign (blake3, ed25519).
func SignAlgorithmValidation(fl validator.FieldLevel) bool {
	alg, err := crypto.ParseAlgorithm(fl.Field().String())
	return err == nil && alg.CanSign()
}

// CipherAlgorithmValidation validates that the field names an algorithm that can encrypt.
func CipherAlgorithmValidation(fl validator.FieldLevel) bool {
	alg, err := crypto.ParseAlgorithm(fl.Field().String())
	return err == nil && alg.CanEncrypt()
}

// RegisterTextValidations registers the algorithm tags on v.
func RegisterTextValidations(v *validator.Validate) error {
	validations := map[string]validator.Func{
		TagTextAlgorithm:       AlgorithmValidation,
		TagTextSignAlgorithm:   SignAlgorithmValidation,
		TagTextCipherAlgorithm: CipherAlgorithmValidation,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}
	return nil
}

// New returns a validator with the text algorithm tags registered.
func New() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = RegisterTextValidations(v)
	return v
}
