package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"bank-console/internal/config"
	"bank-console/internal/models"
)

func TestInitialize(t *testing.T) {
	cfg := config.Load()
	cfg.Database.DSN = "file:initialize_test?mode=memory&cache=shared"

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	assert.True(t, db.Migrator().HasTable(&models.AuditLog{}))
	assert.True(t, db.Migrator().HasIndex(&models.AuditLog{}, "idx_audit_logs_customer_action"))
}

func TestSetupTestDB_StoresAuditLogs(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	entry := &models.AuditLog{Action: models.AuditActionTellerLogin, Resource: models.AuditResourceTeller}
	entry.SetMetadata("attempt", 1)
	require.NoError(t, db.Create(entry).Error)

	var stored models.AuditLog
	require.NoError(t, db.First(&stored, "id = ?", entry.ID).Error)
	assert.Equal(t, models.AuditActionTellerLogin, stored.Action)
	assert.EqualValues(t, 1, stored.GetMetadata("attempt", 0))
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, logLevel("silent"))
	assert.Equal(t, logger.Silent, logLevel(""))
	assert.Equal(t, logger.Error, logLevel("error"))
	assert.Equal(t, logger.Warn, logLevel("warn"))
	assert.Equal(t, logger.Info, logLevel("info"))
}
