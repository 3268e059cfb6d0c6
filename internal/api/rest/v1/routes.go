package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ujwal-s-r/system-design/internal/domain/messages"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, messageCipherService messages.MessageCipherService) {
	v1 := r.Group(BasePath)

	messageHandler := NewMessageHandler(messageCipherService)
	v1.POST("/keys", messageHandler.GenerateKey)
	v1.POST("/encrypt", messageHandler.Encrypt)
	v1.POST("/decrypt", messageHandler.Decrypt)
}
