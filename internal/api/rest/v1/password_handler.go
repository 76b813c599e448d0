package v1

import (
	"net/http"

	"github.com/MGTheTrain/text-vault/internal/domain/text"

	"github.com/gin-gonic/gin"
)

// PasswordHandler defines the interface for handling password generation
type PasswordHandler interface {
	GeneratePassword(ctx *gin.Context)
}

type passwordHandler struct {
	passwordService text.PasswordService
}

// NewPasswordHandler creates a new PasswordHandler
func NewPasswordHandler(passwordService text.PasswordService) PasswordHandler {
	return &passwordHandler{
		passwordService: passwordService,
	}
}

// GeneratePassword handles the POST request to generate a password
// @Summary Generate a password
// @Description Generate a random password. Character classes default to enabled, length defaults to 16.
// @Tags Password
// @Accept json
// @Produce json
// @Param requestBody body PasswordRequest true "Password request"
// @Success 200 {object} PasswordResponse
// @Failure 400 {object} ErrorResponse
// @Router /passwords [post]
func (handler *passwordHandler) GeneratePassword(ctx *gin.Context) {
	var request PasswordRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	password, err := handler.passwordService.Generate(ctx, request.length(), request.upper(), request.lower(), request.number(), request.symbol())
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "error generating password", err)
		return
	}

	ctx.JSON(http.StatusOK, PasswordResponse{Password: password})
}
