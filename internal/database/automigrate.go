package database

import (
	"fmt"

	"gorm.io/gorm"

	"agency-console-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// The unique index on project_trackers.proposal_id is part of the schema
// created here; the one-tracker-per-proposal invariant depends on it.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Admin{},
		&domain.Customer{},
		&domain.Proposal{},
		&domain.ProjectTracker{},
		&domain.Project{},
		&domain.Service{},
		&domain.Post{},
		&domain.Message{},
		&domain.MediaAsset{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
