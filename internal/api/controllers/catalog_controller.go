package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"insura/internal/services"
	"insura/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCategories godoc
// @Summary List all insurance categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (cc *CatalogController) ListCategories(c *gin.Context) {
	categories, err := cc.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"categories": categories}, "Fetched categories successfully")
}

// ListPolicies godoc
// @Summary List active insurance policies
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /policies [get]
func (cc *CatalogController) ListPolicies(c *gin.Context) {
	policies, err := cc.catalogService.ListPolicies(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, policies, "Fetched policies successfully")
}

// GetPolicyByID godoc
// @Summary Fetch one policy
// @Tags Catalog
// @Produce json
// @Param id path string true "Policy ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /policies/{id} [get]
func (cc *CatalogController) GetPolicyByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid policy id")
		return
	}

	policy, err := cc.catalogService.GetPolicyByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, policy, "Fetched policy successfully")
}
