package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"insura/internal/models/request_models"
	"insura/internal/services"
	"insura/pkg/utils"
)

type ChatbotController struct {
	chatbotService services.ChatbotServiceInterface
}

func NewChatbotController(chatbotService services.ChatbotServiceInterface) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
	}
}

// Interact godoc
// @Summary Send a message to the insurance assistant
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} response_models.ChatResponse
// @Failure 400 {object} utils.APIResponse
// @Router /chatbot-interaction [post]
func (cc *ChatbotController) Interact(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_input is required and cannot be empty")
		return
	}

	input := strings.TrimSpace(req.UserInput)
	if input == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_input is required and cannot be empty")
		return
	}

	result, err := cc.chatbotService.Interact(c.Request.Context(), input, req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
