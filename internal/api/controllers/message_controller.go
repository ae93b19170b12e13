package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insura/internal/models/request_models"
	"insura/internal/services"
	"insura/pkg/utils"
)

type MessageController struct {
	messageService services.MessageServiceInterface
}

func NewMessageController(messageService services.MessageServiceInterface) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// Send godoc
// @Summary Send a message to another account
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body request_models.SendMessageRequest true "Message payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages [post]
func (mc *MessageController) Send(c *gin.Context) {
	accountID, err := currentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := mc.messageService.Send(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Message sent")
}

// Inbox godoc
// @Summary List the caller's conversations, newest first
// @Tags Messages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages [get]
func (mc *MessageController) Inbox(c *gin.Context) {
	accountID, err := currentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	inbox, err := mc.messageService.Inbox(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, inbox, "Fetched messages successfully")
}
