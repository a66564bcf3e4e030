package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"agency-console-api/internal/domain"
)

func setupMediaTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create media_assets table for SQLite compatibility
	db.Exec(`CREATE TABLE media_assets (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		entity_type TEXT NOT NULL,
		entity_id TEXT,
		status TEXT NOT NULL DEFAULT 'TEMP',
		file_name TEXT NOT NULL,
		file_key TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		content_type TEXT NOT NULL,
		uploaded_by TEXT NOT NULL,
		expires_at DATETIME
	)`)

	return db
}

func newTempAsset(fileName string, expiresAt *time.Time) *domain.MediaAsset {
	return &domain.MediaAsset{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		EntityType:  domain.MediaEntityPost,
		Status:      domain.MediaStatusTemp,
		FileName:    fileName,
		FileKey:     "media/posts/2026/08/" + fileName,
		FileSize:    1024,
		ContentType: "image/jpeg",
		UploadedBy:  uuid.New(),
		ExpiresAt:   expiresAt,
	}
}

func TestMediaRepository_FindExpiredTemp(t *testing.T) {
	db := setupMediaTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	pastTime := time.Now().Add(-2 * time.Hour)
	futureTime := time.Now().Add(2 * time.Hour)

	expired := newTempAsset("expired.jpg", &pastTime)
	db.Create(expired)

	valid := newTempAsset("valid.jpg", &futureTime)
	db.Create(valid)

	// Confirmed assets are never swept, even past their expiry stamp
	entityID := uuid.New()
	confirmed := newTempAsset("confirmed.jpg", &pastTime)
	confirmed.Status = domain.MediaStatusConfirmed
	confirmed.EntityID = &entityID
	db.Create(confirmed)

	found, err := repo.FindExpiredTemp(ctx)
	if err != nil {
		t.Fatalf("FindExpiredTemp() error = %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("expected 1 expired temp asset, got %d", len(found))
	}
	if found[0].ID != expired.ID {
		t.Errorf("expected expired asset ID %v, got %v", expired.ID, found[0].ID)
	}
}

func TestMediaRepository_Confirm(t *testing.T) {
	db := setupMediaTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	futureTime := time.Now().Add(1 * time.Hour)
	asset1 := newTempAsset("cover.jpg", &futureTime)
	asset2 := newTempAsset("gallery.jpg", &futureTime)
	db.Create(asset1)
	db.Create(asset2)

	entityID := uuid.New()
	if err := repo.Confirm(ctx, []uuid.UUID{asset1.ID, asset2.ID}, entityID); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	for _, id := range []uuid.UUID{asset1.ID, asset2.ID} {
		var updated domain.MediaAsset
		db.First(&updated, id)
		if updated.Status != domain.MediaStatusConfirmed {
			t.Errorf("asset %v status = %v, want CONFIRMED", id, updated.Status)
		}
		if updated.EntityID == nil || *updated.EntityID != entityID {
			t.Errorf("asset %v entity_id = %v, want %v", id, updated.EntityID, entityID)
		}
	}
}

func TestMediaRepository_Confirm_AlreadyConfirmed(t *testing.T) {
	db := setupMediaTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	otherEntity := uuid.New()
	asset := newTempAsset("taken.jpg", nil)
	asset.Status = domain.MediaStatusConfirmed
	asset.EntityID = &otherEntity
	db.Create(asset)

	// A confirmed asset cannot be rebound to another entity
	err := repo.Confirm(ctx, []uuid.UUID{asset.ID}, uuid.New())
	if err == nil {
		t.Error("Confirm() expected error for already-confirmed asset, got nil")
	}

	var unchanged domain.MediaAsset
	db.First(&unchanged, asset.ID)
	if unchanged.EntityID == nil || *unchanged.EntityID != otherEntity {
		t.Errorf("entity_id = %v, want original %v", unchanged.EntityID, otherEntity)
	}
}

func TestMediaRepository_Confirm_EmptyList(t *testing.T) {
	db := setupMediaTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	if err := repo.Confirm(ctx, []uuid.UUID{}, uuid.New()); err != nil {
		t.Fatalf("Confirm() with empty list error = %v", err)
	}
}

func TestMediaRepository_DeleteBatch(t *testing.T) {
	db := setupMediaTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	asset1 := newTempAsset("one.jpg", nil)
	asset2 := newTempAsset("two.jpg", nil)
	asset3 := newTempAsset("three.jpg", nil)
	db.Create(asset1)
	db.Create(asset2)
	db.Create(asset3)

	if err := repo.DeleteBatch(ctx, []uuid.UUID{asset1.ID, asset2.ID}); err != nil {
		t.Fatalf("DeleteBatch() error = %v", err)
	}

	var gone domain.MediaAsset
	if err := db.First(&gone, asset1.ID).Error; err == nil {
		t.Error("expected asset1 to be deleted, but it was found")
	}
	if err := db.First(&gone, asset2.ID).Error; err == nil {
		t.Error("expected asset2 to be deleted, but it was found")
	}

	var kept domain.MediaAsset
	if err := db.First(&kept, asset3.ID).Error; err != nil {
		t.Fatalf("failed to query asset3: %v", err)
	}
}
