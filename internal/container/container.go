package container

import (
	"fmt"
	"time"

	"github.com/mautops/medic-gin/internal/config"
	"github.com/mautops/medic-gin/internal/database"
	"github.com/mautops/medic-gin/internal/repository"
	"github.com/mautops/medic-gin/internal/service"
	"github.com/mautops/medic-gin/internal/storage"
	"gorm.io/gorm"
)

// Container 依赖注入容器
// 管理数据库连接、文件存储与全部业务服务
type Container struct {
	db            *gorm.DB
	fileStore     *storage.FileStore
	orgService    service.OrgService
	empService    service.EmpService
	attachService service.AttachmentService
	treeService   service.TreeService
	draftService  service.DraftService
	reviewService service.ReviewService
	dictService   service.DictService
}

// NewContainer 创建依赖注入容器
// 根据配置初始化数据库(带重试)、执行迁移并装配服务
func NewContainer(cfg *config.Config) (*Container, error) {
	// 数据库连接默认重试 3 次,初始间隔 1 秒,指数退避
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := database.SeedAttachTypes(db); err != nil {
		return nil, fmt.Errorf("failed to seed attach types: %w", err)
	}

	return NewContainerWithDB(cfg, db), nil
}

// NewContainerWithDB 基于已有数据库连接装配容器,测试场景使用
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	fileStore := storage.NewFileStore(cfg.Storage.MediaRoot, cfg.Storage.MediaURL)

	orgRepo := repository.NewOrgRepository(db)
	empRepo := repository.NewEmpRepository(db)
	orgAttachRepo := repository.NewOrgAttachRepository(db)
	empAttachRepo := repository.NewEmpAttachRepository(db)
	orgTypeRepo := repository.NewOrgAttachTypeRepository(db)
	empTypeRepo := repository.NewEmpAttachTypeRepository(db)
	applyRepo := repository.NewApplyRepository(db)

	attachService := service.NewAttachmentService(
		orgRepo, empRepo, orgAttachRepo, empAttachRepo, orgTypeRepo, empTypeRepo, fileStore)

	return &Container{
		db:            db,
		fileStore:     fileStore,
		orgService:    service.NewOrgService(orgRepo, empRepo, attachService),
		empService:    service.NewEmpService(empRepo, orgRepo, attachService),
		attachService: attachService,
		treeService:   service.NewTreeService(orgRepo, empRepo, applyRepo),
		draftService:  service.NewDraftService(orgRepo, applyRepo, db),
		reviewService: service.NewReviewService(orgRepo, applyRepo),
		dictService:   service.NewDictService(orgTypeRepo, empTypeRepo),
	}
}

// DB 获取数据库连接
func (c *Container) DB() *gorm.DB {
	return c.db
}

// FileStore 获取文件存储
func (c *Container) FileStore() *storage.FileStore {
	return c.fileStore
}

// OrgService 获取机构服务
func (c *Container) OrgService() service.OrgService {
	return c.orgService
}

// EmpService 获取员工服务
func (c *Container) EmpService() service.EmpService {
	return c.empService
}

// AttachmentService 获取附件服务
func (c *Container) AttachmentService() service.AttachmentService {
	return c.attachService
}

// TreeService 获取组织树服务
func (c *Container) TreeService() service.TreeService {
	return c.treeService
}

// DraftService 获取草稿服务
func (c *Container) DraftService() service.DraftService {
	return c.draftService
}

// ReviewService 获取审核流转服务
func (c *Container) ReviewService() service.ReviewService {
	return c.reviewService
}

// DictService 获取字典服务
func (c *Container) DictService() service.DictService {
	return c.dictService
}

// Close 关闭容器,清理资源
func (c *Container) Close() error {
	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	return nil
}
