package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agency-console-api/internal/client"
	"agency-console-api/internal/domain"
	"agency-console-api/internal/dto"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/response"
)

// MaxUploadSize caps direct uploads at 50MB
const MaxUploadSize = 50 * 1024 * 1024

// tempAssetTTL is how long an issued upload slot stays valid before the
// cleanup job sweeps it
const tempAssetTTL = 1 * time.Hour

// MediaService defines the interface for media upload handling
type MediaService interface {
	IssueUploadURL(ctx context.Context, adminID uuid.UUID, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error)
	ConfirmAssets(ctx context.Context, assetIDs []uuid.UUID, entityType domain.MediaEntityType, entityID uuid.UUID) error
	ListByEntity(ctx context.Context, entityType domain.MediaEntityType, entityID uuid.UUID) ([]*dto.MediaAssetResponse, error)
	DeleteAsset(ctx context.Context, assetID uuid.UUID) error
}

// mediaServiceImpl is the implementation of MediaService
type mediaServiceImpl struct {
	mediaRepo repository.MediaRepository
	s3Client  client.S3ClientInterface
	logger    *zap.Logger
}

// NewMediaService creates a new instance of MediaService
func NewMediaService(mediaRepo repository.MediaRepository, s3Client client.S3ClientInterface, logger *zap.Logger) MediaService {
	return &mediaServiceImpl{
		mediaRepo: mediaRepo,
		s3Client:  s3Client,
		logger:    logger,
	}
}

// IssueUploadURL creates a presigned upload slot and a TEMP asset record.
// The asset must be confirmed against an entity before the TTL runs out
// or the cleanup job removes both record and object.
func (s *mediaServiceImpl) IssueUploadURL(ctx context.Context, adminID uuid.UUID, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error) {
	if req.FileSize > MaxUploadSize {
		return nil, response.NewAppError(response.ErrCodeValidation, "File size exceeds 50MB limit", "")
	}
	if !strings.HasPrefix(req.ContentType, "image/") && req.ContentType != "application/pdf" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Unsupported content type", req.ContentType)
	}

	entityType := domain.MediaEntityType(req.EntityType)
	keyPrefix := strings.ToLower(req.EntityType) + "s"

	uploadURL, fileKey, err := s.s3Client.GeneratePresignedURL(ctx, keyPrefix, req.FileName, req.ContentType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate upload URL", err.Error())
	}

	expiresAt := time.Now().Add(tempAssetTTL)
	asset := &domain.MediaAsset{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		EntityType:  entityType,
		Status:      domain.MediaStatusTemp,
		FileName:    req.FileName,
		FileKey:     fileKey,
		FileSize:    req.FileSize,
		ContentType: req.ContentType,
		UploadedBy:  adminID,
		ExpiresAt:   &expiresAt,
	}

	if err := s.mediaRepo.Create(ctx, asset); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to record upload", err.Error())
	}

	return &dto.PresignedURLResponse{
		AssetID:   asset.ID,
		UploadURL: uploadURL,
		FileKey:   fileKey,
		ExpiresIn: 300,
	}, nil
}

// ConfirmAssets binds uploaded TEMP assets to an entity
func (s *mediaServiceImpl) ConfirmAssets(ctx context.Context, assetIDs []uuid.UUID, entityType domain.MediaEntityType, entityID uuid.UUID) error {
	if len(assetIDs) == 0 {
		return nil
	}

	assets, err := s.mediaRepo.FindByIDs(ctx, assetIDs)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch media assets", err.Error())
	}
	if len(assets) != len(assetIDs) {
		return response.NewAppError(response.ErrCodeValidation, "One or more media assets not found", "")
	}
	for _, asset := range assets {
		if asset.Status != domain.MediaStatusTemp {
			return response.NewAppError(response.ErrCodeValidation, "Media asset is not pending and cannot be reused", asset.ID.String())
		}
		if asset.EntityType != entityType {
			return response.NewAppError(response.ErrCodeValidation, "Media asset entity type does not match", asset.ID.String())
		}
	}

	if err := s.mediaRepo.Confirm(ctx, assetIDs, entityID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to confirm media assets", err.Error())
	}
	return nil
}

// ListByEntity retrieves the assets attached to an entity
func (s *mediaServiceImpl) ListByEntity(ctx context.Context, entityType domain.MediaEntityType, entityID uuid.UUID) ([]*dto.MediaAssetResponse, error) {
	assets, err := s.mediaRepo.FindByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch media assets", err.Error())
	}

	responses := make([]*dto.MediaAssetResponse, len(assets))
	for i, asset := range assets {
		responses[i] = s.toAssetResponse(asset)
	}
	return responses, nil
}

// DeleteAsset removes an asset record and its stored object
func (s *mediaServiceImpl) DeleteAsset(ctx context.Context, assetID uuid.UUID) error {
	asset, err := s.mediaRepo.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Media asset not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch media asset", err.Error())
	}

	if err := s.s3Client.DeleteFile(ctx, asset.FileKey); err != nil {
		s.logger.Warn("Failed to delete media object from storage",
			zap.String("asset_id", asset.ID.String()),
			zap.String("file_key", asset.FileKey),
			zap.Error(err))
	}

	if err := s.mediaRepo.Delete(ctx, assetID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete media asset", err.Error())
	}
	return nil
}

func (s *mediaServiceImpl) toAssetResponse(asset *domain.MediaAsset) *dto.MediaAssetResponse {
	return &dto.MediaAssetResponse{
		ID:          asset.ID,
		EntityType:  asset.EntityType,
		EntityID:    asset.EntityID,
		Status:      asset.Status,
		FileName:    asset.FileName,
		FileURL:     s.s3Client.GetFileURL(asset.FileKey),
		FileSize:    asset.FileSize,
		ContentType: asset.ContentType,
		CreatedAt:   asset.CreatedAt,
	}
}
