package v1

import (
	"github.com/MGTheTrain/text-vault/internal/domain/keys"
	"github.com/MGTheTrain/text-vault/internal/domain/text"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	textSignService text.TextSignService,
	textCipherService text.TextCipherService,
	passwordService text.PasswordService,
	keyGenerationService keys.KeyGenerationService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Text Routes
	textHandler := NewTextHandler(textSignService, textCipherService)
	v1.POST("/text/sign", textHandler.Sign)
	v1.POST("/text/verify", textHandler.Verify)
	v1.POST("/text/encrypt", textHandler.Encrypt)
	v1.POST("/text/decrypt", textHandler.Decrypt)

	// Keys Routes
	keyHandler := NewKeyHandler(keyGenerationService)
	v1.POST("/keys", keyHandler.GenerateKeys)

	// Password Routes
	passwordHandler := NewPasswordHandler(passwordService)
	v1.POST("/passwords", passwordHandler.GeneratePassword)
}
