package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/models/request_models"
	"voyage/internal/services"
	"voyage/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// POST /api/ai-chat
func (ch *ChatController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := ch.chatService.Reply(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reply, "")
}
