package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ashworthrenovations/ashworth-api/pkg/logger"
	"github.com/ashworthrenovations/ashworth-api/pkg/metrics"
	"github.com/ashworthrenovations/ashworth-api/pkg/retry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client uploads lead photo attachments to S3-compatible object storage.
type Client struct {
	s3Client   *s3.Client
	bucketName string
	endpoint   string
}

// ClientInterface allows mocking the storage client in service tests.
type ClientInterface interface {
	UploadPhoto(ctx context.Context, data []byte, key, contentType string) (string, error)
	GenerateKey(leadID, originalFileName string) string
}

// NewClient creates a new object storage client using the S3 SDK.
func NewClient(accessKeyID, secretAccessKey, bucketName, endpoint, region string) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("storage endpoint is required")
	}
	if region == "" {
		region = "eu-west-2"
	}

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"", // session token not needed
		),
	})

	logger.Info("Object storage client initialized",
		zap.String("bucket", bucketName),
		zap.String("endpoint", endpoint),
		zap.String("region", region),
	)

	return &Client{
		s3Client:   s3Client,
		bucketName: bucketName,
		endpoint:   endpoint,
	}, nil
}

// UploadPhoto uploads a photo attachment and returns its public URL.
// Uploads are retried with backoff; attachments are best-effort so the
// caller treats a final failure as advisory, not fatal.
func (c *Client) UploadPhoto(ctx context.Context, data []byte, key, contentType string) (string, error) {
	start := time.Now()
	operation := "uploadPhoto"

	err := retry.Do(ctx, retry.StorageConfig(), operation, func() error {
		_, putErr := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(c.bucketName),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		return putErr
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall(ctx, "object_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall(ctx, "object_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(data)),
	)

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucketName, key), nil
}

// GenerateKey builds the object key for a lead photo attachment.
// Keys are namespaced by lead ID so attachments for one enquiry stay
// together, with a random prefix so repeated filenames never collide.
func (c *Client) GenerateKey(leadID, originalFileName string) string {
	base := strings.ToLower(path.Base(originalFileName))
	base = strings.ReplaceAll(base, " ", "-")
	return fmt.Sprintf("leads/%s/%s-%s", leadID, uuid.NewString()[:8], base)
}
