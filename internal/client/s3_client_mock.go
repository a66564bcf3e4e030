package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// MockS3Client implements S3ClientInterface for testing without AWS credentials
type MockS3Client struct {
	Bucket string
	Region string

	// Optional function overrides for custom test behavior
	GenerateFileKeyFunc      func(entityType, fileExt string) (string, error)
	GeneratePresignedURLFunc func(ctx context.Context, entityType, fileName, contentType string) (string, string, error)
	UploadFileFunc           func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc           func(ctx context.Context, key string) error
	GetFileURLFunc           func(key string) string

	// Deleted collects keys passed to DeleteFile for assertions
	Deleted []string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket: "test-bucket",
		Region: "eu-central-1",
	}
}

// GenerateFileKey generates a unique file key
func (m *MockS3Client) GenerateFileKey(entityType, fileExt string) (string, error) {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(entityType, fileExt)
	}

	if !validMediaPrefixes[entityType] {
		return "", fmt.Errorf("invalid entity type: %s", entityType)
	}

	now := time.Now()
	return fmt.Sprintf("media/%s/%s/%s/%s_%d%s",
		entityType, now.Format("2006"), now.Format("01"), uuid.New().String(), now.Unix(), fileExt), nil
}

// GeneratePresignedURL returns a fake upload URL and key
func (m *MockS3Client) GeneratePresignedURL(ctx context.Context, entityType, fileName, contentType string) (string, string, error) {
	if m.GeneratePresignedURLFunc != nil {
		return m.GeneratePresignedURLFunc(ctx, entityType, fileName, contentType)
	}

	key, err := m.GenerateFileKey(entityType, pathExt(fileName))
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s?signature=test", m.Bucket, m.Region, key), key, nil
}

// UploadFile pretends to upload and returns the key
func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return key, nil
}

// DeleteFile records the deleted key
func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	m.Deleted = append(m.Deleted, key)
	return nil
}

// GetFileURL returns a fake public URL
func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

func pathExt(fileName string) string {
	for i := len(fileName) - 1; i >= 0; i-- {
		if fileName[i] == '.' {
			return fileName[i:]
		}
	}
	return ""
}
