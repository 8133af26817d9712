package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mautops/medic-gin/internal/config"
	"github.com/mautops/medic-gin/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BuildDSN 构建 PostgreSQL DSN
func BuildDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// Connect 连接数据库并配置连接池
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(BuildDSN(cfg)), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 10
	}
	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = 100
	}
	maxLifetime := cfg.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = 3600
	}
	maxIdleTime := cfg.ConnMaxIdleTime
	if maxIdleTime == 0 {
		maxIdleTime = 600
	}

	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(maxIdleTime) * time.Second)

	return db, nil
}

// ConnectWithRetry 带重试的数据库连接,指数退避
func ConnectWithRetry(cfg config.DatabaseConfig, maxRetries int, retryInterval time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		db, err = Connect(cfg)
		if err == nil {
			return db, nil
		}
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
			retryInterval *= 2
		}
	}

	return nil, fmt.Errorf("failed to connect database after %d retries: %w", maxRetries, err)
}

// Migrate 执行数据库迁移
func Migrate(db *gorm.DB) error {
	// SQLite 不支持 jsonb,申报表需要手动建表
	dialector := db.Dialector.Name()
	if dialector == "sqlite" || dialector == "sqlite3" {
		if err := createSQLiteApplyTables(db); err != nil {
			return fmt.Errorf("failed to create SQLite apply tables: %w", err)
		}
		if err := db.AutoMigrate(
			&model.OrgInfo{},
			&model.EmpInfo{},
			&model.OrgAttachType{},
			&model.EmpAttachType{},
			&model.OrgAttach{},
			&model.EmpAttach{},
		); err != nil {
			return fmt.Errorf("failed to auto migrate: %w", err)
		}
	} else {
		if err := db.AutoMigrate(
			&model.OrgInfo{},
			&model.EmpInfo{},
			&model.OrgAttachType{},
			&model.EmpAttachType{},
			&model.OrgAttach{},
			&model.EmpAttach{},
			&model.ApplyAudit{},
			&model.ApplyApprove{},
			&model.ApplyReject{},
		); err != nil {
			return fmt.Errorf("failed to auto migrate: %w", err)
		}
	}

	if err := CreateIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createSQLiteApplyTables 为 SQLite 手动创建申报表(使用 TEXT 替代 jsonb)
func createSQLiteApplyTables(db *gorm.DB) error {
	tables := map[string]string{
		"medic_apply_audit": `
			CREATE TABLE IF NOT EXISTS medic_apply_audit (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				org_id INTEGER,
				emp_id INTEGER,
				payload TEXT NOT NULL,
				status VARCHAR(32) NOT NULL,
				created_at DATETIME NOT NULL,
				updated_at DATETIME NOT NULL
			)`,
		"medic_apply_approve": `
			CREATE TABLE IF NOT EXISTS medic_apply_approve (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				org_id INTEGER,
				emp_id INTEGER,
				payload TEXT NOT NULL,
				status VARCHAR(32) NOT NULL,
				created_at DATETIME NOT NULL,
				updated_at DATETIME NOT NULL
			)`,
		"medic_apply_reject": `
			CREATE TABLE IF NOT EXISTS medic_apply_reject (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				org_id INTEGER,
				emp_id INTEGER,
				payload TEXT NOT NULL,
				status VARCHAR(32) NOT NULL,
				reason VARCHAR(255),
				created_at DATETIME NOT NULL,
				updated_at DATETIME NOT NULL
			)`,
	}
	for name, ddl := range tables {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
	}
	return nil
}

// CreateIndexes 创建数据库索引
func CreateIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_org_info_parent ON medic_org_info(parent_id)",
		"CREATE INDEX IF NOT EXISTS idx_org_info_region ON medic_org_info(city_id, county_id)",
		"CREATE INDEX IF NOT EXISTS idx_org_info_status ON medic_org_info(status)",
		"CREATE INDEX IF NOT EXISTS idx_emp_info_org ON medic_emp_info(org_id, is_delete)",
		"CREATE INDEX IF NOT EXISTS idx_emp_info_id_number ON medic_emp_info(id_number)",
		"CREATE INDEX IF NOT EXISTS idx_org_attach_org ON medic_org_attach(org_id, is_delete)",
		"CREATE INDEX IF NOT EXISTS idx_emp_attach_emp ON medic_emp_attach(emp_id, is_delete)",
		"CREATE INDEX IF NOT EXISTS idx_apply_audit_org_status ON medic_apply_audit(org_id, status)",
	}
	for _, ddl := range indexes {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	// PostgreSQL 特定的 GIN 索引
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_apply_audit_payload_gin ON medic_apply_audit USING GIN (payload)").Error; err != nil {
			return fmt.Errorf("failed to create idx_apply_audit_payload_gin: %w", err)
		}
	}

	return nil
}

// CheckHealth 检查数据库连接健康状态
func CheckHealth(db *gorm.DB) bool {
	if db == nil {
		return false
	}

	sqlDB, err := db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx) == nil
}
