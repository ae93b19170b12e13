package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insura/internal/models/db_models"
	"insura/internal/models/request_models"
	"insura/internal/models/response_models"
	"insura/pkg/utils"
)

type stubClaimService struct {
	submitResp *response_models.SubmitClaimResponse
	submitErr  error

	submittedDocs []db_models.ClaimDocument
}

func (s *stubClaimService) Submit(ctx context.Context, claimantID uuid.UUID, request request_models.SubmitClaimRequest, docs []db_models.ClaimDocument) (*response_models.SubmitClaimResponse, error) {
	s.submittedDocs = docs
	return s.submitResp, s.submitErr
}

func (s *stubClaimService) ListMine(ctx context.Context, claimantID uuid.UUID) ([]response_models.ClaimResponse, error) {
	return nil, nil
}

func (s *stubClaimService) ListAll(ctx context.Context) ([]response_models.ClaimResponse, error) {
	return nil, nil
}

func (s *stubClaimService) Process(ctx context.Context, claimID uuid.UUID, request request_models.ProcessClaimRequest) (*response_models.ProcessClaimResponse, error) {
	return nil, nil
}

func (s *stubClaimService) Timeline(ctx context.Context, claimID, claimantID uuid.UUID) ([]response_models.TimelineStep, error) {
	return nil, nil
}

func submitClaimRouter(t *testing.T, service *stubClaimService) (*gin.Engine, string) {
	t.Helper()

	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewClaimController(service)
	r.POST("/submit-claim", func(c *gin.Context) {
		c.Set("user_id", uuid.New().String())
		controller.SubmitClaim(c)
	})
	return r, uploadDir
}

func submitClaimBody(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fields := map[string]string{
		"policy_id":          uuid.New().String(),
		"title":              "Windscreen damage",
		"claim_amount":       "3000",
		"date_of_occurrence": "2025-03-14",
		"time_of_occurrence": "09:30",
		"location":           "Accra Ring Road",
		"incident_type":      "Collision",
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	part, err := writer.CreateFormFile("documents", "police-report.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("report contents"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func uploadedFileCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestSubmitClaimStoresAttachments(t *testing.T) {
	service := &stubClaimService{
		submitResp: &response_models.SubmitClaimResponse{
			ClaimID:     uuid.New(),
			ClaimNumber: "CLM-1A2B3C4D",
			Status:      string(db_models.ClaimStatusPending),
		},
	}
	router, uploadDir := submitClaimRouter(t, service)

	body, contentType := submitClaimBody(t)
	req := httptest.NewRequest(http.MethodPost, "/submit-claim", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, uploadedFileCount(t, uploadDir))
	require.Len(t, service.submittedDocs, 1)
	assert.Equal(t, "police-report.pdf", service.submittedDocs[0].OriginalName)
}

func TestSubmitClaimRejectionRemovesAttachments(t *testing.T) {
	service := &stubClaimService{submitErr: utils.ErrNoActiveSubscription}
	router, uploadDir := submitClaimRouter(t, service)

	body, contentType := submitClaimBody(t)
	req := httptest.NewRequest(http.MethodPost, "/submit-claim", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, uploadedFileCount(t, uploadDir))
}
