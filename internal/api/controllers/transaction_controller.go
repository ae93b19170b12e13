package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insura/internal/services"
	"insura/pkg/utils"
)

type TransactionController struct {
	transactionService services.TransactionServiceInterface
	dashboardService   services.DashboardServiceInterface
}

func NewTransactionController(
	transactionService services.TransactionServiceInterface,
	dashboardService services.DashboardServiceInterface,
) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
		dashboardService:   dashboardService,
	}
}

// RecentTransactions godoc
// @Summary List the caller's ledger entries, newest first
// @Tags Transactions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /recent-transactions [get]
func (tc *TransactionController) RecentTransactions(c *gin.Context) {
	accountID, err := currentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	txns, err := tc.transactionService.RecentTransactions(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "Fetched transactions successfully")
}

// DashboardSummary godoc
// @Summary Aggregate counts for the caller's dashboard
// @Tags Transactions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (tc *TransactionController) DashboardSummary(c *gin.Context) {
	accountID, err := currentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	summary, err := tc.dashboardService.BuildSummary(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Fetched dashboard summary successfully")
}
