package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zukafarm/reward-engine/internal/infrastructure/adapter/model"
)

// newDryRunDB opens a gorm session that builds SQL without touching a server,
// so tests can assert on the statements the repositories generate.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=reward dbname=reward_test",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	require.NoError(t, err)
	return db
}

// The account and content repositories rely on FOR UPDATE to linearize
// concurrent balance mutations and approval transitions. These tests pin the
// generated SQL so a locking regression cannot slip through silently.
func TestWithRowLock(t *testing.T) {
	userID := uuid.New()

	t.Run("should lock the account row selected for a balance mutation", func(t *testing.T) {
		db := newDryRunDB(t)

		var accountModel model.Account
		tx := withRowLock(db).First(&accountModel, "user_id = ?", userID)

		require.NoError(t, tx.Error)
		assert.Contains(t, tx.Statement.SQL.String(), "FOR UPDATE")
	})

	t.Run("should lock the content row selected for an approval transition", func(t *testing.T) {
		db := newDryRunDB(t)

		var contentModel model.ContentItem
		tx := withRowLock(db).First(&contentModel, "id = ?", uuid.New())

		require.NoError(t, tx.Error)
		assert.Contains(t, tx.Statement.SQL.String(), "FOR UPDATE")
	})

	t.Run("should leave plain reads unlocked", func(t *testing.T) {
		db := newDryRunDB(t)

		var accountModel model.Account
		tx := db.First(&accountModel, "user_id = ?", userID)

		require.NoError(t, tx.Error)
		assert.NotContains(t, tx.Statement.SQL.String(), "FOR UPDATE")
	})
}
