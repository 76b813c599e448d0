package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, crypto.ErrAuthentication):
		return http.StatusUnprocessableEntity
	case errors.Is(err, crypto.ErrEncoding),
		errors.Is(err, crypto.ErrKeyFormat),
		errors.Is(err, crypto.ErrMalformedSignature),
		errors.Is(err, crypto.ErrMalformedCiphertext),
		errors.Is(err, crypto.ErrUnsupportedAlgorithm),
		errors.Is(err, crypto.ErrOperationNotSupported):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
