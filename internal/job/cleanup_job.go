package job

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agency-console-api/internal/client"
	"agency-console-api/internal/repository"
)

// CleanupJob sweeps expired temporary media assets. Presigned uploads
// that were never confirmed leave TEMP rows behind; once past their
// expiry the stored objects and rows are removed.
type CleanupJob struct {
	mediaRepo repository.MediaRepository
	s3Client  client.S3ClientInterface
	logger    *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	mediaRepo repository.MediaRepository,
	s3Client client.S3ClientInterface,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		mediaRepo: mediaRepo,
		s3Client:  s3Client,
		logger:    logger,
	}
}

// Run executes one sweep. It deletes each expired asset's object from
// storage first, then removes the database rows in batch. Rows whose
// object deletion failed are kept for the next sweep.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	expired, err := j.mediaRepo.FindExpiredTemp(ctx)
	if err != nil {
		j.logger.Error("Failed to find expired temporary media assets", zap.Error(err))
		return
	}

	if len(expired) == 0 {
		return
	}

	j.logger.Info("Found expired temporary media assets", zap.Int("count", len(expired)))

	var deletedIDs []uuid.UUID
	failCount := 0

	for _, asset := range expired {
		if err := j.s3Client.DeleteFile(ctx, asset.FileKey); err != nil {
			j.logger.Error("Failed to delete object from storage",
				zap.String("asset_id", asset.ID.String()),
				zap.String("file_key", asset.FileKey),
				zap.Error(err))
			failCount++
			continue
		}
		deletedIDs = append(deletedIDs, asset.ID)
	}

	if len(deletedIDs) > 0 {
		if err := j.mediaRepo.DeleteBatch(ctx, deletedIDs); err != nil {
			j.logger.Error("Failed to delete media asset records",
				zap.Int("count", len(deletedIDs)),
				zap.Error(err))
		}
	}

	j.logger.Info("Media cleanup completed",
		zap.Int("total_expired", len(expired)),
		zap.Int("deleted", len(deletedIDs)),
		zap.Int("failed", failCount))
}
