package service_test

import (
	"testing"

	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/repository"
	"github.com/mautops/medic-gin/internal/service"
	"github.com/mautops/medic-gin/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv 服务层测试环境,聚合仓储与服务
type testEnv struct {
	db            *gorm.DB
	orgRepo       repository.OrgRepository
	empRepo       repository.EmpRepository
	applyRepo     repository.ApplyRepository
	orgTypeRepo   repository.OrgAttachTypeRepository
	empTypeRepo   repository.EmpAttachTypeRepository
	store         *storage.FileStore
	orgService    service.OrgService
	empService    service.EmpService
	attachService service.AttachmentService
	treeService   service.TreeService
	draftService  service.DraftService
	reviewService service.ReviewService
}

// newTestEnv 创建内存数据库上的完整服务测试环境
func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.OrgInfo{},
		&model.EmpInfo{},
		&model.OrgAttachType{},
		&model.EmpAttachType{},
		&model.OrgAttach{},
		&model.EmpAttach{},
		&model.ApplyAudit{},
		&model.ApplyApprove{},
		&model.ApplyReject{},
	)
	require.NoError(t, err)

	orgRepo := repository.NewOrgRepository(db)
	empRepo := repository.NewEmpRepository(db)
	orgAttachRepo := repository.NewOrgAttachRepository(db)
	empAttachRepo := repository.NewEmpAttachRepository(db)
	orgTypeRepo := repository.NewOrgAttachTypeRepository(db)
	empTypeRepo := repository.NewEmpAttachTypeRepository(db)
	applyRepo := repository.NewApplyRepository(db)

	require.NoError(t, orgTypeRepo.SeedDefaults())
	require.NoError(t, empTypeRepo.SeedDefaults())

	store := storage.NewFileStore(t.TempDir(), "/media")
	attachService := service.NewAttachmentService(
		orgRepo, empRepo, orgAttachRepo, empAttachRepo, orgTypeRepo, empTypeRepo, store)

	return &testEnv{
		db:            db,
		orgRepo:       orgRepo,
		empRepo:       empRepo,
		applyRepo:     applyRepo,
		orgTypeRepo:   orgTypeRepo,
		empTypeRepo:   empTypeRepo,
		store:         store,
		orgService:    service.NewOrgService(orgRepo, empRepo, attachService),
		empService:    service.NewEmpService(empRepo, orgRepo, attachService),
		attachService: attachService,
		treeService:   service.NewTreeService(orgRepo, empRepo, applyRepo),
		draftService:  service.NewDraftService(orgRepo, applyRepo, db),
		reviewService: service.NewReviewService(orgRepo, applyRepo),
	}
}

// createOrg 快捷创建一个草稿机构
func createOrg(t *testing.T, env *testEnv, name string) *service.OrgView {
	org, err := env.orgService.Create(&service.CreateOrgRequest{
		OrgName:  name,
		OrgCode6: "370100",
		CityID:   "city-01",
		CountyID: "county-01",
	})
	require.NoError(t, err)
	return org
}

// assertBizKind 断言错误为指定种类的业务错误
func assertBizKind(t *testing.T, err error, kind string) {
	t.Helper()
	require.Error(t, err)
	bizErr, ok := err.(*service.BizError)
	require.True(t, ok, "expected *service.BizError, got %T", err)
	require.Equal(t, kind, bizErr.Kind)
}
