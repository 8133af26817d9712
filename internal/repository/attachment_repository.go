package repository

import (
	"github.com/mautops/medic-gin/internal/model"
	"gorm.io/gorm"
)

// OrgAttachRepository 机构附件仓储接口
type OrgAttachRepository interface {
	Create(attach *model.OrgAttach) error
	FindByID(id uint) (*model.OrgAttach, error)
	ListByOrg(orgID uint) ([]*model.OrgAttach, error)
	SoftDelete(id uint) error
}

// EmpAttachRepository 员工附件仓储接口
type EmpAttachRepository interface {
	Create(attach *model.EmpAttach) error
	FindByID(id uint) (*model.EmpAttach, error)
	ListByEmp(empID uint) ([]*model.EmpAttach, error)
	SoftDelete(id uint) error
}

type orgAttachRepository struct {
	db *gorm.DB
}

// NewOrgAttachRepository 创建机构附件仓储
func NewOrgAttachRepository(db *gorm.DB) OrgAttachRepository {
	return &orgAttachRepository{db: db}
}

// Create 创建附件记录
func (r *orgAttachRepository) Create(attach *model.OrgAttach) error {
	return r.db.Create(attach).Error
}

// FindByID 根据 ID 查找未删除的附件记录
func (r *orgAttachRepository) FindByID(id uint) (*model.OrgAttach, error) {
	var attach model.OrgAttach
	if err := r.db.Where("id = ? AND is_delete = ?", id, false).First(&attach).Error; err != nil {
		return nil, err
	}
	return &attach, nil
}

// ListByOrg 查找机构下未删除的附件记录,按创建时间倒序
func (r *orgAttachRepository) ListByOrg(orgID uint) ([]*model.OrgAttach, error) {
	var attaches []*model.OrgAttach
	err := r.db.Where("org_id = ? AND is_delete = ?", orgID, false).
		Order("created_at DESC").Find(&attaches).Error
	return attaches, err
}

// SoftDelete 软删除附件记录
func (r *orgAttachRepository) SoftDelete(id uint) error {
	return r.db.Model(&model.OrgAttach{}).
		Where("id = ?", id).
		Update("is_delete", true).Error
}

type empAttachRepository struct {
	db *gorm.DB
}

// NewEmpAttachRepository 创建员工附件仓储
func NewEmpAttachRepository(db *gorm.DB) EmpAttachRepository {
	return &empAttachRepository{db: db}
}

// Create 创建附件记录
func (r *empAttachRepository) Create(attach *model.EmpAttach) error {
	return r.db.Create(attach).Error
}

// FindByID 根据 ID 查找未删除的附件记录
func (r *empAttachRepository) FindByID(id uint) (*model.EmpAttach, error) {
	var attach model.EmpAttach
	if err := r.db.Where("id = ? AND is_delete = ?", id, false).First(&attach).Error; err != nil {
		return nil, err
	}
	return &attach, nil
}

// ListByEmp 查找员工下未删除的附件记录,按创建时间倒序
func (r *empAttachRepository) ListByEmp(empID uint) ([]*model.EmpAttach, error) {
	var attaches []*model.EmpAttach
	err := r.db.Where("emp_id = ? AND is_delete = ?", empID, false).
		Order("created_at DESC").Find(&attaches).Error
	return attaches, err
}

// SoftDelete 软删除附件记录
func (r *empAttachRepository) SoftDelete(id uint) error {
	return r.db.Model(&model.EmpAttach{}).
		Where("id = ?", id).
		Update("is_delete", true).Error
}
