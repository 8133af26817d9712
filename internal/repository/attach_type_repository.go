package repository

import (
	"errors"

	"github.com/mautops/medic-gin/internal/model"
	"gorm.io/gorm"
)

// OrgAttachTypeRepository 机构附件类型仓储接口
type OrgAttachTypeRepository interface {
	FindByID(id uint) (*model.OrgAttachType, error)
	FindByCode(code string) (*model.OrgAttachType, error)
	FindAllActive() ([]*model.OrgAttachType, error)
	SeedDefaults() error
}

// EmpAttachTypeRepository 员工附件类型仓储接口
type EmpAttachTypeRepository interface {
	FindByID(id uint) (*model.EmpAttachType, error)
	FindByCode(code string) (*model.EmpAttachType, error)
	FindAllActive() ([]*model.EmpAttachType, error)
	SeedDefaults() error
}

type orgAttachTypeRepository struct {
	db *gorm.DB
}

// NewOrgAttachTypeRepository 创建机构附件类型仓储
func NewOrgAttachTypeRepository(db *gorm.DB) OrgAttachTypeRepository {
	return &orgAttachTypeRepository{db: db}
}

// FindByID 根据 ID 查找附件类型
func (r *orgAttachTypeRepository) FindByID(id uint) (*model.OrgAttachType, error) {
	var at model.OrgAttachType
	if err := r.db.Where("id = ?", id).First(&at).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

// FindByCode 根据编码查找未删除的附件类型
func (r *orgAttachTypeRepository) FindByCode(code string) (*model.OrgAttachType, error) {
	var at model.OrgAttachType
	if err := r.db.Where("code = ? AND is_delete = ?", code, false).First(&at).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

// FindAllActive 查找所有未删除的附件类型,按排序字段返回
func (r *orgAttachTypeRepository) FindAllActive() ([]*model.OrgAttachType, error) {
	var types []*model.OrgAttachType
	err := r.db.Where("is_delete = ?", false).
		Order("sort_order, id").Find(&types).Error
	return types, err
}

// SeedDefaults 幂等写入默认附件类型目录,已存在的编码保持不变
func (r *orgAttachTypeRepository) SeedDefaults() error {
	for idx, seed := range model.DefaultOrgAttachTypes {
		var existing model.OrgAttachType
		err := r.db.Where("code = ?", seed.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		at := model.OrgAttachType{
			Code:      seed.Code,
			Name:      seed.Name,
			SortOrder: idx,
		}
		if err := r.db.Create(&at).Error; err != nil {
			return err
		}
	}
	return nil
}

type empAttachTypeRepository struct {
	db *gorm.DB
}

// NewEmpAttachTypeRepository 创建员工附件类型仓储
func NewEmpAttachTypeRepository(db *gorm.DB) EmpAttachTypeRepository {
	return &empAttachTypeRepository{db: db}
}

// FindByID 根据 ID 查找附件类型
func (r *empAttachTypeRepository) FindByID(id uint) (*model.EmpAttachType, error) {
	var at model.EmpAttachType
	if err := r.db.Where("id = ?", id).First(&at).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

// FindByCode 根据编码查找未删除的附件类型
func (r *empAttachTypeRepository) FindByCode(code string) (*model.EmpAttachType, error) {
	var at model.EmpAttachType
	if err := r.db.Where("code = ? AND is_delete = ?", code, false).First(&at).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

// FindAllActive 查找所有未删除的附件类型,按排序字段返回
func (r *empAttachTypeRepository) FindAllActive() ([]*model.EmpAttachType, error) {
	var types []*model.EmpAttachType
	err := r.db.Where("is_delete = ?", false).
		Order("sort_order, id").Find(&types).Error
	return types, err
}

// SeedDefaults 幂等写入默认附件类型目录,已存在的编码保持不变
func (r *empAttachTypeRepository) SeedDefaults() error {
	for idx, seed := range model.DefaultEmpAttachTypes {
		var existing model.EmpAttachType
		err := r.db.Where("code = ?", seed.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		at := model.EmpAttachType{
			Code:      seed.Code,
			Name:      seed.Name,
			SortOrder: idx,
		}
		if err := r.db.Create(&at).Error; err != nil {
			return err
		}
	}
	return nil
}
