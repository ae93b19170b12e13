package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insura/internal/models/request_models"
	"insura/internal/services"
	"insura/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// JoinPolicy godoc
// @Summary Enroll in a policy plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.JoinPolicyRequest true "Enrollment payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /join-policy [post]
func (sc *SubscriptionController) JoinPolicy(c *gin.Context) {
	accountID, err := currentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.JoinPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := sc.subscriptionService.JoinPolicy(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Successfully joined policy and first month's payment recorded")
}

// MyPolicies godoc
// @Summary List the caller's subscriptions
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /my-policies [get]
func (sc *SubscriptionController) MyPolicies(c *gin.Context) {
	accountID, err := currentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	subs, err := sc.subscriptionService.MyPolicies(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Fetched subscriptions successfully")
}
