package repository

import (
	"github.com/mautops/medic-gin/internal/model"
	"gorm.io/gorm"
)

// EmpRepository 员工仓储接口
type EmpRepository interface {
	Create(emp *model.EmpInfo) error
	FindByID(id uint) (*model.EmpInfo, error)
	FindByOrg(orgID uint) ([]*model.EmpInfo, error)
	Update(emp *model.EmpInfo) error
	SoftDelete(id uint) error
	CountByOrg(orgID uint) (total int64, blind int64, err error)
	FindOtherOrgByIDNumber(idNumber string, orgID uint, excludeEmpID uint) ([]*model.EmpInfo, error)
}

// empRepository 员工仓储实现
type empRepository struct {
	db *gorm.DB
}

// NewEmpRepository 创建员工仓储
func NewEmpRepository(db *gorm.DB) EmpRepository {
	return &empRepository{db: db}
}

// Create 创建员工
func (r *empRepository) Create(emp *model.EmpInfo) error {
	return r.db.Create(emp).Error
}

// FindByID 根据 ID 查找未删除的员工
func (r *empRepository) FindByID(id uint) (*model.EmpInfo, error) {
	var emp model.EmpInfo
	if err := r.db.Where("id = ? AND is_delete = ?", id, false).First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// FindByOrg 查找机构下所有未删除的员工
func (r *empRepository) FindByOrg(orgID uint) ([]*model.EmpInfo, error) {
	var emps []*model.EmpInfo
	err := r.db.Where("org_id = ? AND is_delete = ?", orgID, false).
		Order("id").Find(&emps).Error
	return emps, err
}

// Update 保存员工变更
func (r *empRepository) Update(emp *model.EmpInfo) error {
	return r.db.Save(emp).Error
}

// SoftDelete 软删除员工
func (r *empRepository) SoftDelete(id uint) error {
	return r.db.Model(&model.EmpInfo{}).
		Where("id = ?", id).
		Update("is_delete", true).Error
}

// CountByOrg 统计机构下未删除的员工总数与盲人数
func (r *empRepository) CountByOrg(orgID uint) (int64, int64, error) {
	var total, blind int64
	base := r.db.Model(&model.EmpInfo{}).
		Where("org_id = ? AND is_delete = ?", orgID, false)
	if err := base.Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.Model(&model.EmpInfo{}).
		Where("org_id = ? AND is_delete = ? AND emp_type = ?", orgID, false, model.EmpTypeBlind).
		Count(&blind).Error
	return total, blind, err
}

// FindOtherOrgByIDNumber 查找其他机构中持有相同证件号的未删除员工
// 用于跨机构重复挂靠检查,excludeEmpID 非 0 时排除当前记录(更新场景)
func (r *empRepository) FindOtherOrgByIDNumber(idNumber string, orgID uint, excludeEmpID uint) ([]*model.EmpInfo, error) {
	var emps []*model.EmpInfo
	query := r.db.Where("id_number = ? AND is_delete = ? AND org_id <> ?", idNumber, false, orgID)
	if excludeEmpID != 0 {
		query = query.Where("id <> ?", excludeEmpID)
	}
	err := query.Find(&emps).Error
	return emps, err
}
