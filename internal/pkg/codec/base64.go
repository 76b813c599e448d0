package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// Format selects a base64 alphabet for the generic encode/decode helpers.
type Format string

const (
	// FormatStandard is RFC 4648 base64 with padding.
	FormatStandard Format = "standard"
	// FormatURLSafe is RFC 4648 base64url without padding.
	FormatURLSafe Format = "urlsafe"
)

// ParseFormat parses a case-sensitive format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatStandard, FormatURLSafe:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported base64 format %q", s)
	}
}

// Encode encodes bytes to URL-safe base64 without padding.
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode decodes URL-safe base64 without padding. Surrounding whitespace is ignored;
// anything else outside the alphabet, including padding, is rejected.
func Decode(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrEncoding, err)
	}
	return data, nil
}

// EncodeWith encodes data using the given format.
func EncodeWith(format Format, data []byte) (string, error) {
	enc, err := encoding(format)
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(data), nil
}

// DecodeWith decodes text using the given format.
func DecodeWith(format Format, s string) ([]byte, error) {
	enc, err := encoding(format)
	if err != nil {
		return nil, err
	}
	data, err := enc.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrEncoding, err)
	}
	return data, nil
}

func encoding(format Format) (*base64.Encoding, error) {
	switch format {
	case FormatStandard:
		return base64.StdEncoding, nil
	case FormatURLSafe:
		return base64.RawURLEncoding, nil
	default:
		return nil, fmt.Errorf("unsupported base64 format %q", format)
	}
}
