package database

import (
	"fmt"

	"github.com/mautops/medic-gin/internal/repository"
	"gorm.io/gorm"
)

// SeedAttachTypes 幂等写入附件类型默认目录
// 作为 migrate 命令的显式步骤执行,不在请求路径上触发
func SeedAttachTypes(db *gorm.DB) error {
	if err := repository.NewOrgAttachTypeRepository(db).SeedDefaults(); err != nil {
		return fmt.Errorf("failed to seed org attach types: %w", err)
	}
	if err := repository.NewEmpAttachTypeRepository(db).SeedDefaults(); err != nil {
		return fmt.Errorf("failed to seed emp attach types: %w", err)
	}
	return nil
}
