package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/zukafarm/reward-engine/internal/domain/port/core"
	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	// Create migration version table first
	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(context.Background())
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.recordVersion(CurrentSchemaVersion); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the currently applied schema version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at DESC").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return version.Version, nil
}

// autoMigrateModels migrates every table used by the engine
func (m *MigrationManager) autoMigrateModels() error {
	return m.db.AutoMigrate(
		&model.Account{},
		&model.Transaction{},
		&model.ContentItem{},
		&model.Engagement{},
		&model.DailyLimit{},
		&model.AdDailyImpression{},
		&model.AuditLog{},
		&model.UserRole{},
	)
}

// createIndexes creates indexes AutoMigrate doesn't cover
func (m *MigrationManager) createIndexes() error {
	statements := []string{
		// Ledger chain queries read one account's entries in reverse order
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions (user_id, created_at DESC)",
		// Moderation queues list pending items oldest first
		"CREATE INDEX IF NOT EXISTS idx_content_pending ON content_items (created_at) WHERE approval_status = 'pending'",
	}

	for _, stmt := range statements {
		if err := m.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func (m *MigrationManager) recordVersion(version string) error {
	record := model.MigrationVersion{
		Version:   version,
		AppliedAt: time.Now().UTC(),
	}
	if err := m.db.Create(&record).Error; err != nil {
		m.logger.Error("Failed to record schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}
