package database_test

import (
	"testing"

	"github.com/mautops/medic-gin/internal/config"
	"github.com/mautops/medic-gin/internal/database"
	"github.com/mautops/medic-gin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestBuildDSN 测试 DSN 拼装
func TestBuildDSN(t *testing.T) {
	dsn := database.BuildDSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "medic",
		Password: "secret",
		DBName:   "medic",
		SSLMode:  "require",
	})
	assert.Equal(t, "host=db.internal port=5433 user=medic password=secret dbname=medic sslmode=require", dsn)
}

// TestMigrate_SQLite 测试 SQLite 下迁移建表
func TestMigrate_SQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	// 所有业务表可用
	tables := []string{
		"medic_org_info",
		"medic_emp_info",
		"medic_org_attach_type",
		"medic_emp_attach_type",
		"medic_org_attach",
		"medic_emp_attach",
		"medic_apply_audit",
		"medic_apply_approve",
		"medic_apply_reject",
	}
	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	// 申报表可以正常写入
	orgID := uint(1)
	record := &model.ApplyAudit{OrgID: &orgID, Payload: []byte("{}"), Status: model.StatusDraft}
	assert.NoError(t, db.Create(record).Error)

	// 重复迁移幂等
	assert.NoError(t, database.Migrate(db))
}

// TestSeedAttachTypes 测试附件类型目录写入
func TestSeedAttachTypes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	err = database.SeedAttachTypes(db)
	assert.NoError(t, err)

	var orgCount, empCount int64
	require.NoError(t, db.Model(&model.OrgAttachType{}).Count(&orgCount).Error)
	require.NoError(t, db.Model(&model.EmpAttachType{}).Count(&empCount).Error)
	assert.Equal(t, int64(len(model.DefaultOrgAttachTypes)), orgCount)
	assert.Equal(t, int64(len(model.DefaultEmpAttachTypes)), empCount)

	// 重复执行幂等
	require.NoError(t, database.SeedAttachTypes(db))
	require.NoError(t, db.Model(&model.OrgAttachType{}).Count(&orgCount).Error)
	assert.Equal(t, int64(len(model.DefaultOrgAttachTypes)), orgCount)
}

// TestCheckHealth 测试数据库健康检查
func TestCheckHealth(t *testing.T) {
	assert.False(t, database.CheckHealth(nil))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	assert.True(t, database.CheckHealth(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.False(t, database.CheckHealth(db))
}
