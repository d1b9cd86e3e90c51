package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ashworthrenovations/ashworth-api/internal/handlers"
	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

// MockLeadService is a mock implementation of LeadServiceInterface
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) SubmitLead(ctx context.Context, submission *models.LeadSubmission) *models.SubmissionResult {
	args := m.Called(ctx, submission)
	return args.Get(0).(*models.SubmissionResult)
}

func (m *MockLeadService) ListLeads(ctx context.Context, q models.LeadListQuery) ([]*models.Lead, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lead), args.Error(1)
}

func setupLeadRouter(service *MockLeadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewLeadHandler(service)
	router.POST("/api/v1/leads", handler.SubmitLead)
	return router
}

func multipartRequest(t *testing.T, fields map[string]string, photos map[string][]byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for name, data := range photos {
		part, err := writer.CreateFormFile(name, name+".jpg")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func validFields() map[string]string {
	return map[string]string{
		"service":  "Bathroom",
		"postcode": "SW16 1AB",
		"name":     "John Smith",
		"phone":    "07468451511",
		"email":    "john@example.com",
	}
}

func TestLeadHandler_SubmitLead_Success(t *testing.T) {
	service := new(MockLeadService)
	router := setupLeadRouter(service)

	service.On("SubmitLead", mock.Anything, mock.MatchedBy(func(s *models.LeadSubmission) bool {
		return s.Service == "Bathroom" && s.Postcode == "SW16 1AB" &&
			s.Name == "John Smith" && s.Phone == "07468451511" &&
			s.Email == "john@example.com"
	})).Return(&models.SubmissionResult{Success: true, LeadID: "lead-1"}).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, validFields(), nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "lead-1", result.LeadID)

	service.AssertExpectations(t)
}

func TestLeadHandler_SubmitLead_ValidationFailure(t *testing.T) {
	service := new(MockLeadService)
	router := setupLeadRouter(service)

	service.On("SubmitLead", mock.Anything, mock.Anything).
		Return(&models.SubmissionResult{Success: false, Error: "Invalid postcode format"}).Once()

	fields := validFields()
	fields["postcode"] = "12345"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, fields, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result models.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result.Error, "Invalid postcode")
}

func TestLeadHandler_SubmitLead_PassesPhotos(t *testing.T) {
	service := new(MockLeadService)
	router := setupLeadRouter(service)

	service.On("SubmitLead", mock.Anything, mock.MatchedBy(func(s *models.LeadSubmission) bool {
		return len(s.Photos) == 2 &&
			s.Photos[0].Name == "photo-0.jpg" &&
			s.Photos[1].Name == "photo-1.jpg" &&
			s.Photos[0].SizeBytes > 0
	})).Return(&models.SubmissionResult{Success: true, LeadID: "lead-2"}).Once()

	photos := map[string][]byte{
		"photo-0": []byte("first image bytes"),
		"photo-1": []byte("second image bytes"),
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, validFields(), photos))

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestLeadHandler_SubmitLead_NotMultipart(t *testing.T) {
	service := new(MockLeadService)
	router := setupLeadRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", bytes.NewBufferString(`{"service":"Bathroom"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "SubmitLead")
}
