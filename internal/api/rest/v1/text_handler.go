package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/text"
	"github.com/MGTheTrain/text-vault/internal/pkg/codec"

	"github.com/gin-gonic/gin"
)

// TextHandler defines the interface for handling text sign/verify/encrypt/decrypt operations
type TextHandler interface {
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// textHandler struct holds the services
type textHandler struct {
	textSignService   text.TextSignService
	textCipherService text.TextCipherService
}

// NewTextHandler creates a new TextHandler
func NewTextHandler(textSignService text.TextSignService, textCipherService text.TextCipherService) TextHandler {
	return &textHandler{
		textSignService:   textSignService,
		textCipherService: textCipherService,
	}
}

// Sign handles the POST request to sign text
// @Summary Sign text
// @Description Sign the data with a base64url encoded blake3 or ed25519 private key.
// @Tags Text
// @Accept json
// @Produce json
// @Param requestBody body SignRequest true "Sign request"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Router /text/sign [post]
func (handler *textHandler) Sign(ctx *gin.Context) {
	var request SignRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	key, ok := decodeKey(ctx, request.Key)
	if !ok {
		return
	}

	signature, err := handler.textSignService.Sign(ctx, strings.NewReader(request.Data), bytes.NewReader(key), crypto.Algorithm(request.Algorithm))
	if err != nil {
		writeError(ctx, statusFor(err), "error signing text", err)
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{Signature: signature})
}

// Verify handles the POST request to verify a signature
// @Summary Verify a text signature
// @Description Verify a base64url signature over the data. A mismatch is reported as verified=false.
// @Tags Text
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Verify request"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /text/verify [post]
func (handler *textHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	key, ok := decodeKey(ctx, request.Key)
	if !ok {
		return
	}

	verified, err := handler.textSignService.Verify(ctx, strings.NewReader(request.Data), bytes.NewReader(key), request.Signature, crypto.Algorithm(request.Algorithm))
	if err != nil {
		writeError(ctx, statusFor(err), "error verifying signature", err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Verified: verified})
}

// Encrypt handles the POST request to encrypt text
// @Summary Encrypt text
// @Description Encrypt the data with a base64url encoded chacha20poly1305 key.
// @Tags Text
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Encrypt request"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /text/encrypt [post]
func (handler *textHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	key, ok := decodeKey(ctx, request.Key)
	if !ok {
		return
	}

	ciphertext, err := handler.textCipherService.Encrypt(ctx, strings.NewReader(request.Data), bytes.NewReader(key), crypto.Algorithm(request.Algorithm))
	if err != nil {
		writeError(ctx, statusFor(err), "error encrypting text", err)
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles the POST request to decrypt text
// @Summary Decrypt text
// @Description Decrypt a base64url ciphertext produced by the encrypt endpoint.
// @Tags Text
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Decrypt request"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /text/decrypt [post]
func (handler *textHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	key, ok := decodeKey(ctx, request.Key)
	if !ok {
		return
	}

	plaintext, err := handler.textCipherService.Decrypt(ctx, request.Ciphertext, bytes.NewReader(key), crypto.Algorithm(request.Algorithm))
	if err != nil {
		writeError(ctx, statusFor(err), "error decrypting text", err)
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Data: string(plaintext)})
}

// bindAndValidate binds the JSON body into request and runs validate.
// It writes a 400 response and returns false on failure.
func bindAndValidate(ctx *gin.Context, request interface{}, validate func() error) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		writeError(ctx, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	if err := validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, "validation failed", err)
		return false
	}
	return true
}

func decodeKey(ctx *gin.Context, encoded string) ([]byte, bool) {
	key, err := codec.Decode(encoded)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "invalid key", err)
		return nil, false
	}
	return key, true
}

func writeError(ctx *gin.Context, status int, message string, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = fmt.Sprintf("%s: %v", message, err.Error())
	ctx.JSON(status, errorResponse)
}
