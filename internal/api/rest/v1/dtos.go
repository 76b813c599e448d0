package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/text-vault/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error message returned by the API
type ErrorResponse struct {
	Message string `json:"message"`
}

// SignRequest represents the body of a sign request. Data is plain text, Key is base64url.
type SignRequest struct {
	Algorithm string `json:"algorithm" validate:"required,text_sign_algorithm"`
	Data      string `json:"data"`
	Key       string `json:"key" validate:"required"`
}

// SignResponse carries a base64url signature
type SignResponse struct {
	Signature string `json:"signature"`
}

// VerifyRequest represents the body of a verify request
type VerifyRequest struct {
	Algorithm string `json:"algorithm" validate:"required,text_sign_algorithm"`
	Data      string `json:"data"`
	Key       string `json:"key" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// VerifyResponse reports whether a signature matched
type VerifyResponse struct {
	Verified bool `json:"verified"`
}

// EncryptRequest represents the body of an encrypt request
type EncryptRequest struct {
	Algorithm string `json:"algorithm" validate:"required,text_cipher_algorithm"`
	Data      string `json:"data"`
	Key       string `json:"key" validate:"required"`
}

// EncryptResponse carries a base64url nonce||ciphertext||tag blob
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptRequest represents the body of a decrypt request
type DecryptRequest struct {
	Algorithm  string `json:"algorithm" validate:"required,text_cipher_algorithm"`
	Ciphertext string `json:"ciphertext" validate:"required"`
	Key        string `json:"key" validate:"required"`
}

// DecryptResponse carries the recovered plaintext
type DecryptResponse struct {
	Data string `json:"data"`
}

// GenerateKeyRequest represents the body of a key generation request
type GenerateKeyRequest struct {
	Algorithm string `json:"algorithm" validate:"required,text_algorithm"`
}

// KeyResponse is one generated key, base64url encoded
type KeyResponse struct {
	KeyPairID       string    `json:"key_pair_id"`
	Algorithm       string    `json:"algorithm"`
	Type            string    `json:"type"`
	Key             string    `json:"key"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// PasswordRequest represents the body of a password generation request.
// Omitted class flags default to enabled.
type PasswordRequest struct {
	Length int   `json:"length" validate:"omitempty,min=4,max=128"`
	Upper  *bool `json:"upper"`
	Lower  *bool `json:"lower"`
	Number *bool `json:"number"`
	Symbol *bool `json:"symbol"`
}

// PasswordResponse carries a generated password
type PasswordResponse struct {
	Password string `json:"password"`
}

// DefaultPasswordLength is used when a PasswordRequest omits the length
const DefaultPasswordLength = 16

// Validate for validating SignRequest struct
func (r *SignRequest) Validate() error { return validateStruct(r) }

// Validate for validating VerifyRequest struct
func (r *VerifyRequest) Validate() error { return validateStruct(r) }

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error { return validateStruct(r) }

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error { return validateStruct(r) }

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error { return validateStruct(r) }

// Validate for validating PasswordRequest struct
func (r *PasswordRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if !r.upper() && !r.lower() && !r.number() && !r.symbol() {
		return fmt.Errorf("at least one character class must be enabled")
	}
	return nil
}

func (r *PasswordRequest) length() int {
	if r.Length == 0 {
		return DefaultPasswordLength
	}
	return r.Length
}

func (r *PasswordRequest) upper() bool  { return r.Upper == nil || *r.Upper }
func (r *PasswordRequest) lower() bool  { return r.Lower == nil || *r.Lower }
func (r *PasswordRequest) number() bool { return r.Number == nil || *r.Number }
func (r *PasswordRequest) symbol() bool { return r.Symbol == nil || *r.Symbol }

func validateStruct(s interface{}) error {
	validate := validators.New()

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
