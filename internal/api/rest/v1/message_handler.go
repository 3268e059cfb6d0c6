package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ujwal-s-r/system-design/internal/domain/messages"
)

// MessageHandler defines the interface for handling IDEA message operations
type MessageHandler interface {
	GenerateKey(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// messageHandler struct holds the services
type messageHandler struct {
	messageCipherService messages.MessageCipherService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageCipherService messages.MessageCipherService) MessageHandler {
	return &messageHandler{
		messageCipherService: messageCipherService,
	}
}

// GenerateKey handles the POST request to generate a random 128-bit key
// @Summary Generate an IDEA key
// @Tags Message
// @Produce json
// @Success 201 {object} KeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *messageHandler) GenerateKey(ctx *gin.Context) {
	material, err := handler.messageCipherService.GenerateKey(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error generating key: %v", err),
		})
		return
	}

	ctx.JSON(http.StatusCreated, KeyResponse{
		ID:              material.ID,
		Key:             material.Key,
		DateTimeCreated: material.DateTimeCreated,
	})
}

// Encrypt handles the POST request to encrypt an eight-byte message
// @Summary Encrypt a message
// @Description Encrypt exactly eight bytes under a 128-bit key, generating the key when none is sent.
// @Tags Message
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Message and optional key"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *messageHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid encrypt request: %v", err),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("validation failed: %v", err),
		})
		return
	}

	encrypted, err := handler.messageCipherService.EncryptMessage(ctx.Request.Context(), request.Message, request.Key)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error encrypting message: %v", err),
		})
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{
		ID:              encrypted.ID,
		Ciphertext:      encrypted.Ciphertext,
		Key:             encrypted.Key,
		ChangedBits:     encrypted.ChangedBits,
		DateTimeCreated: encrypted.DateTimeCreated,
	})
}

// Decrypt handles the POST request to decrypt a 64-bit ciphertext
// @Summary Decrypt a message
// @Tags Message
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Ciphertext and key"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *messageHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid decrypt request: %v", err),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("validation failed: %v", err),
		})
		return
	}

	decrypted, err := handler.messageCipherService.DecryptMessage(ctx.Request.Context(), request.Ciphertext, request.Key)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error decrypting message: %v", err),
		})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{
		Message: decrypted.Message,
		Bits:    decrypted.Bits,
	})
}
