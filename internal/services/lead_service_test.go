package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ashworthrenovations/ashworth-api/config"
	"github.com/ashworthrenovations/ashworth-api/internal/models"
	"github.com/ashworthrenovations/ashworth-api/internal/services"
	"github.com/ashworthrenovations/ashworth-api/pkg/email"
	"github.com/ashworthrenovations/ashworth-api/pkg/httpclient"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{AppEnv: "development"},
		Site: config.SiteConfig{
			BaseURL:      "https://ashworthrenovations.co.uk",
			BusinessName: "Ashworth Renovations",
			BusinessType: "HomeAndConstructionBusiness",
		},
		SendGrid: config.SendGridConfig{LeadsEmail: "leads@ashworthrenovations.co.uk"},
	}
}

func validSubmission() *models.LeadSubmission {
	return &models.LeadSubmission{
		Service:  "Bathroom",
		Postcode: "SW16 1AB",
		Name:     "John Smith",
		Phone:    "07468451511",
		Email:    "john@example.com",
	}
}

func TestLeadService_SubmitLead_Success(t *testing.T) {
	repo := new(MockLeadRepository)
	sender := new(MockEmailSender)
	sink := &RecordingEventSink{}
	service := services.NewLeadService(repo, sender, nil, sink, testConfig(), httpclient.NewStandardClient())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Lead")).Return("lead-123", nil).Once()
	sender.On("Send", ctx, mock.AnythingOfType("email.Message")).Return(nil).Once()

	result := service.SubmitLead(ctx, validSubmission())

	require.True(t, result.Success)
	assert.Equal(t, "lead-123", result.LeadID)
	assert.Empty(t, result.Error)
	assert.Empty(t, result.PhotoWarnings)

	require.Len(t, sink.Events, 1)
	assert.Equal(t, "lead_submitted", sink.Events[0].Name)
	assert.Equal(t, "Bathroom", sink.Events[0].Properties["service"])

	repo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestLeadService_SubmitLead_ValidationOrder(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.LeadSubmission)
		wantError string
	}{
		{
			name:      "missing service",
			mutate:    func(s *models.LeadSubmission) { s.Service = "" },
			wantError: "Invalid service: ",
		},
		{
			name:      "unknown service",
			mutate:    func(s *models.LeadSubmission) { s.Service = "Roofing" },
			wantError: "Invalid service: Roofing",
		},
		{
			name:      "numeric postcode",
			mutate:    func(s *models.LeadSubmission) { s.Postcode = "12345" },
			wantError: "Invalid postcode format",
		},
		{
			name:      "word postcode",
			mutate:    func(s *models.LeadSubmission) { s.Postcode = "INVALID" },
			wantError: "Invalid postcode format",
		},
		{
			name:      "blank name",
			mutate:    func(s *models.LeadSubmission) { s.Name = "   " },
			wantError: "Name is required",
		},
		{
			name:      "short phone",
			mutate:    func(s *models.LeadSubmission) { s.Phone = "0746845" },
			wantError: "Invalid phone number format",
		},
		{
			name:      "bad email",
			mutate:    func(s *models.LeadSubmission) { s.Email = "not-an-email" },
			wantError: "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLeadRepository)
			sender := new(MockEmailSender)
			service := services.NewLeadService(repo, sender, nil, nil, testConfig(), httpclient.NewStandardClient())

			sub := validSubmission()
			tt.mutate(sub)

			result := service.SubmitLead(context.Background(), sub)

			require.False(t, result.Success)
			assert.Equal(t, tt.wantError, result.Error)

			// validation failures short-circuit before any side effect
			repo.AssertNotCalled(t, "Create")
			sender.AssertNotCalled(t, "Send")
		})
	}
}

func TestLeadService_SubmitLead_FirstFailureWins(t *testing.T) {
	repo := new(MockLeadRepository)
	sender := new(MockEmailSender)
	service := services.NewLeadService(repo, sender, nil, nil, testConfig(), httpclient.NewStandardClient())

	// everything invalid: the service error must win
	sub := &models.LeadSubmission{Service: "Nope", Postcode: "12345", Name: "", Phone: "x", Email: "y"}
	result := service.SubmitLead(context.Background(), sub)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "Invalid service")
}

func TestLeadService_SubmitLead_PhotosAreAdvisory(t *testing.T) {
	repo := new(MockLeadRepository)
	sender := new(MockEmailSender)
	service := services.NewLeadService(repo, sender, nil, nil, testConfig(), httpclient.NewStandardClient())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Lead")).Return("lead-456", nil).Once()
	sender.On("Send", ctx, mock.AnythingOfType("email.Message")).Return(nil).Once()

	sub := validSubmission()
	sub.Photos = []models.PhotoAttachment{
		{Name: "plan.gif", MimeType: "image/gif", SizeBytes: 1024},
		{Name: "huge.jpg", MimeType: "image/jpeg", SizeBytes: 5*1024*1024 + 1},
	}

	result := service.SubmitLead(ctx, sub)

	require.True(t, result.Success, "invalid photos must never block a valid submission")
	assert.Len(t, result.PhotoWarnings, 2)
	assert.Contains(t, result.PhotoWarnings[0], "Invalid file type")
	assert.Contains(t, result.PhotoWarnings[1], "File too large")
}

func TestLeadService_SubmitLead_TransmissionFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	sender := new(MockEmailSender)
	service := services.NewLeadService(repo, sender, nil, nil, testConfig(), httpclient.NewStandardClient())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Lead")).Return("lead-789", nil).Once()
	sender.On("Send", ctx, mock.AnythingOfType("email.Message")).
		Return(errors.New("sendgrid: 503 service unavailable")).Once()

	result := service.SubmitLead(ctx, validSubmission())

	require.False(t, result.Success)
	assert.Equal(t, "sendgrid: 503 service unavailable", result.Error)

	// no retry: exactly one send attempt
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestLeadService_SubmitLead_RepositoryFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	sender := new(MockEmailSender)
	service := services.NewLeadService(repo, sender, nil, nil, testConfig(), httpclient.NewStandardClient())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Lead")).
		Return("", errors.New("connection refused")).Once()

	result := service.SubmitLead(ctx, validSubmission())

	require.False(t, result.Success)
	assert.Equal(t, "Failed to save lead", result.Error)
	sender.AssertNotCalled(t, "Send")
}

func TestLeadService_SubmitLead_SanitizesFields(t *testing.T) {
	repo := new(MockLeadRepository)
	sender := new(MockEmailSender)
	service := services.NewLeadService(repo, sender, nil, nil, testConfig(), httpclient.NewStandardClient())
	ctx := context.Background()

	var saved *models.Lead
	repo.On("Create", ctx, mock.AnythingOfType("*models.Lead")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Lead) }).
		Return("lead-san", nil).Once()
	sender.On("Send", ctx, mock.AnythingOfType("email.Message")).Return(nil).Once()

	sub := validSubmission()
	sub.Name = `<script>alert(1)</script>John Smith`

	result := service.SubmitLead(ctx, sub)

	require.True(t, result.Success)
	require.NotNil(t, saved)
	assert.NotContains(t, saved.Name, "<script>")
	assert.Contains(t, saved.Name, "John Smith")
}

func TestLeadService_SubmitLead_UploadsValidPhotos(t *testing.T) {
	repo := new(MockLeadRepository)
	sender := new(MockEmailSender)
	store := new(MockStorageClient)
	service := services.NewLeadService(repo, sender, store, nil, testConfig(), httpclient.NewStandardClient())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Lead")).Return("lead-pho", nil).Once()
	store.On("GenerateKey", "lead-pho", "kitchen.jpg").Return("leads/lead-pho/kitchen.jpg").Once()
	store.On("UploadPhoto", ctx, mock.Anything, "leads/lead-pho/kitchen.jpg", "image/jpeg").
		Return("https://cdn.example.com/leads/lead-pho/kitchen.jpg", nil).Once()
	repo.On("AttachPhotoURL", ctx, "lead-pho", "https://cdn.example.com/leads/lead-pho/kitchen.jpg").
		Return(nil).Once()
	sender.On("Send", ctx, mock.MatchedBy(func(msg email.Message) bool {
		return strings.Contains(msg.Body, "https://cdn.example.com/leads/lead-pho/kitchen.jpg")
	})).Return(nil).Once()

	sub := validSubmission()
	sub.Photos = []models.PhotoAttachment{
		{Name: "kitchen.jpg", MimeType: "image/jpeg", SizeBytes: 2048, Data: []byte("jpeg")},
	}

	result := service.SubmitLead(ctx, sub)

	require.True(t, result.Success)
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestLeadService_SubmitLead_PhotoBoundarySize(t *testing.T) {
	repo := new(MockLeadRepository)
	sender := new(MockEmailSender)
	store := new(MockStorageClient)
	service := services.NewLeadService(repo, sender, store, nil, testConfig(), httpclient.NewStandardClient())
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Lead")).Return("lead-bnd", nil).Once()
	store.On("GenerateKey", "lead-bnd", "exact.jpg").Return("leads/lead-bnd/exact.jpg").Once()
	store.On("UploadPhoto", ctx, mock.Anything, "leads/lead-bnd/exact.jpg", "image/jpeg").
		Return("https://cdn.example.com/leads/lead-bnd/exact.jpg", nil).Once()
	repo.On("AttachPhotoURL", ctx, "lead-bnd", mock.Anything).Return(nil).Once()
	sender.On("Send", ctx, mock.AnythingOfType("email.Message")).Return(nil).Once()

	sub := validSubmission()
	sub.Photos = []models.PhotoAttachment{
		{Name: "exact.jpg", MimeType: "image/jpeg", SizeBytes: 5 * 1024 * 1024},
	}

	result := service.SubmitLead(ctx, sub)

	require.True(t, result.Success)
	assert.Empty(t, result.PhotoWarnings, "a photo at exactly the size limit is accepted")
	store.AssertExpectations(t)
}

func TestLeadService_ListLeads(t *testing.T) {
	repo := new(MockLeadRepository)
	sender := new(MockEmailSender)
	service := services.NewLeadService(repo, sender, nil, nil, testConfig(), httpclient.NewStandardClient())
	ctx := context.Background()

	expected := []*models.Lead{{ID: "a"}, {ID: "b"}}
	query := models.LeadListQuery{Limit: 50, Postcode: "SW16 1AB"}
	repo.On("List", ctx, query).Return(expected, nil).Once()

	leads, err := service.ListLeads(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, expected, leads)
}
