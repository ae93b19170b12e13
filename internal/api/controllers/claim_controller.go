package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"insura/internal/models/db_models"
	"insura/internal/models/request_models"
	"insura/internal/services"
	"insura/pkg/utils"
)

type ClaimController struct {
	claimService services.ClaimServiceInterface
	uploadDir    string
}

func NewClaimController(claimService services.ClaimServiceInterface) *ClaimController {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return &ClaimController{
		claimService: claimService,
		uploadDir:    uploadDir,
	}
}

// SubmitClaim godoc
// @Summary Submit a claim with optional document attachments
// @Tags Claims
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /submit-claim [post]
func (cc *ClaimController) SubmitClaim(c *gin.Context) {
	accountID, err := currentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	var req request_models.SubmitClaimRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing fields")
		return
	}

	var docs []db_models.ClaimDocument
	var savedPaths []string
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["documents"] {
			stored := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
			path := filepath.Join(cc.uploadDir, stored)
			if err := c.SaveUploadedFile(file, path); err != nil {
				removeFiles(savedPaths)
				utils.RespondError(c, http.StatusInternalServerError, "Failed to store attachment")
				return
			}
			savedPaths = append(savedPaths, path)
			docs = append(docs, db_models.ClaimDocument{
				FileName:     stored,
				OriginalName: file.Filename,
			})
		}
	}

	result, err := cc.claimService.Submit(c.Request.Context(), accountID, req, docs)
	if err != nil {
		// A rejected submission must not leave attachments on disk.
		removeFiles(savedPaths)
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Claim submitted successfully")
}

func removeFiles(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			log.Printf("failed to remove attachment %s: %v", path, err)
		}
	}
}

// ListMyClaims godoc
// @Summary List the caller's claims
// @Tags Claims
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /claims [get]
func (cc *ClaimController) ListMyClaims(c *gin.Context) {
	accountID, err := currentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	claims, err := cc.claimService.ListMine(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, claims, "Fetched claims successfully")
}

// ListAllClaims godoc
// @Summary List every claim, newest first (insurer only)
// @Tags Claims
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /all-claims [get]
func (cc *ClaimController) ListAllClaims(c *gin.Context) {
	claims, err := cc.claimService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, claims, "Fetched claims successfully")
}

// ProcessClaim godoc
// @Summary Approve or deny a claim (insurer only)
// @Tags Claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID"
// @Param request body request_models.ProcessClaimRequest true "Adjudication payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /process-claim/{id} [post]
func (cc *ClaimController) ProcessClaim(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid claim id")
		return
	}

	var req request_models.ProcessClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := cc.claimService.Process(c.Request.Context(), claimID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Claim denied"
	if result.Status == string(db_models.ClaimStatusApproved) {
		message = "Claim approved successfully"
	}
	utils.RespondSuccess(c, result, message)
}

// ClaimTimeline godoc
// @Summary Lifecycle timeline for one of the caller's claims
// @Tags Claims
// @Produce json
// @Param id path string true "Claim ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /claim-timeline/{id} [get]
func (cc *ClaimController) ClaimTimeline(c *gin.Context) {
	accountID, err := currentAccountID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid claim id")
		return
	}

	timeline, err := cc.claimService.Timeline(c.Request.Context(), claimID, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"timeline": timeline}, "Fetched claim timeline successfully")
}
