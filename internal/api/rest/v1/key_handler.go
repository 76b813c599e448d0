package v1

import (
	"net/http"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/keys"
	"github.com/MGTheTrain/text-vault/internal/pkg/codec"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKeys(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyGenerationService keys.KeyGenerationService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyGenerationService keys.KeyGenerationService) KeyHandler {
	return &keyHandler{
		keyGenerationService: keyGenerationService,
	}
}

// GenerateKeys handles the POST request to generate key material
// @Summary Generate keys
// @Description Generate a fresh key, or a private/public pair for ed25519, and return it base64url encoded. Nothing is stored.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key generation request"
// @Success 201 {array} KeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeyRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	set, err := handler.keyGenerationService.Generate(ctx, crypto.Algorithm(request.Algorithm))
	if err != nil {
		writeError(ctx, statusFor(err), "error generating keys", err)
		return
	}
	defer set.Zero()

	var listResponse = []KeyResponse{}
	for _, key := range set.Keys {
		listResponse = append(listResponse, KeyResponse{
			KeyPairID:       set.KeyPairID,
			Algorithm:       string(key.Algorithm),
			Type:            string(key.Role),
			Key:             codec.Encode(key.Bytes),
			DateTimeCreated: set.DateTimeCreated,
		})
	}

	ctx.JSON(http.StatusCreated, listResponse)
}
