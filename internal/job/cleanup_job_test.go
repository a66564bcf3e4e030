package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"agency-console-api/internal/client"
	"agency-console-api/internal/domain"
)

// MockMediaRepository is a mock implementation of MediaRepository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, asset *domain.MediaAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockMediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.MediaAsset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) FindByEntity(ctx context.Context, entityType domain.MediaEntityType, entityID uuid.UUID) ([]*domain.MediaAsset, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.MediaAsset, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) FindExpiredTemp(ctx context.Context) ([]*domain.MediaAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) Confirm(ctx context.Context, assetIDs []uuid.UUID, entityID uuid.UUID) error {
	args := m.Called(ctx, assetIDs, entityID)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaRepository) DeleteBatch(ctx context.Context, assetIDs []uuid.UUID) error {
	args := m.Called(ctx, assetIDs)
	return args.Error(0)
}

func expiredAsset(fileKey string) *domain.MediaAsset {
	past := time.Now().Add(-2 * time.Hour)
	return &domain.MediaAsset{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		EntityType:  domain.MediaEntityPost,
		Status:      domain.MediaStatusTemp,
		FileName:    "upload.png",
		FileKey:     fileKey,
		FileSize:    1024,
		ContentType: "image/png",
		UploadedBy:  uuid.New(),
		ExpiresAt:   &past,
	}
}

func TestCleanupJob_DeletesExpiredAssets(t *testing.T) {
	assets := []*domain.MediaAsset{
		expiredAsset("media/posts/2026/08/a.png"),
		expiredAsset("media/posts/2026/08/b.png"),
	}

	mediaRepo := new(MockMediaRepository)
	mediaRepo.On("FindExpiredTemp", mock.Anything).Return(assets, nil)
	mediaRepo.On("DeleteBatch", mock.Anything, []uuid.UUID{assets[0].ID, assets[1].ID}).Return(nil)

	s3Mock := client.NewMockS3Client()

	job := NewCleanupJob(mediaRepo, s3Mock, zap.NewNop())
	job.Run()

	mediaRepo.AssertExpectations(t)
	assert.Equal(t, []string{assets[0].FileKey, assets[1].FileKey}, s3Mock.Deleted)
}

func TestCleanupJob_NothingExpired(t *testing.T) {
	mediaRepo := new(MockMediaRepository)
	mediaRepo.On("FindExpiredTemp", mock.Anything).Return([]*domain.MediaAsset{}, nil)

	job := NewCleanupJob(mediaRepo, client.NewMockS3Client(), zap.NewNop())
	job.Run()

	mediaRepo.AssertExpectations(t)
	mediaRepo.AssertNotCalled(t, "DeleteBatch", mock.Anything, mock.Anything)
}

func TestCleanupJob_KeepsRowWhenStorageDeleteFails(t *testing.T) {
	assets := []*domain.MediaAsset{
		expiredAsset("media/posts/2026/08/ok.png"),
		expiredAsset("media/posts/2026/08/stuck.png"),
	}

	mediaRepo := new(MockMediaRepository)
	mediaRepo.On("FindExpiredTemp", mock.Anything).Return(assets, nil)
	// only the successfully deleted object's row is removed
	mediaRepo.On("DeleteBatch", mock.Anything, []uuid.UUID{assets[0].ID}).Return(nil)

	s3Mock := client.NewMockS3Client()
	s3Mock.DeleteFileFunc = func(ctx context.Context, key string) error {
		if key == assets[1].FileKey {
			return errors.New("access denied")
		}
		return nil
	}

	job := NewCleanupJob(mediaRepo, s3Mock, zap.NewNop())
	job.Run()

	mediaRepo.AssertExpectations(t)
}

func TestCleanupJob_RepositoryFailureAborts(t *testing.T) {
	mediaRepo := new(MockMediaRepository)
	mediaRepo.On("FindExpiredTemp", mock.Anything).Return(nil, errors.New("db down"))

	job := NewCleanupJob(mediaRepo, client.NewMockS3Client(), zap.NewNop())
	job.Run()

	mediaRepo.AssertNotCalled(t, "DeleteBatch", mock.Anything, mock.Anything)
}
