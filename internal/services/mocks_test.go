package services_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
	"github.com/ashworthrenovations/ashworth-api/pkg/email"
)

// MockLeadRepository is a mock implementation of LeadRepositoryInterface
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *models.Lead) (string, error) {
	args := m.Called(ctx, lead)
	return args.String(0), args.Error(1)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, q models.LeadListQuery) ([]*models.Lead, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lead), args.Error(1)
}

func (m *MockLeadRepository) AttachPhotoURL(ctx context.Context, leadID, url string) error {
	args := m.Called(ctx, leadID, url)
	return args.Error(0)
}

// MockEmailSender is a mock implementation of email.Sender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockStorageClient is a mock implementation of storage.ClientInterface
type MockStorageClient struct {
	mock.Mock
}

func (m *MockStorageClient) UploadPhoto(ctx context.Context, data []byte, key, contentType string) (string, error) {
	args := m.Called(ctx, data, key, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorageClient) GenerateKey(leadID, fileName string) string {
	args := m.Called(leadID, fileName)
	return args.String(0)
}

// RecordingEventSink captures emitted analytics events
type RecordingEventSink struct {
	mu     sync.Mutex
	Events []RecordedEvent
}

type RecordedEvent struct {
	Name       string
	Properties map[string]string
}

func (r *RecordingEventSink) RecordEvent(ctx context.Context, name string, properties map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, RecordedEvent{Name: name, Properties: properties})
}
