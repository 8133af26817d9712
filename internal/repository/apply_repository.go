package repository

import (
	"github.com/mautops/medic-gin/internal/model"
	"gorm.io/gorm"
)

// ApplyRepository 申报记录仓储接口
// 覆盖审核、审批、退回三张申报表
type ApplyRepository interface {
	CreateAudit(record *model.ApplyAudit) error
	CreateApprove(record *model.ApplyApprove) error
	CreateReject(record *model.ApplyReject) error
	CountAuditByOrg(orgID uint) (total int64, pending int64, err error)
	ListAuditByOrg(orgID uint) ([]*model.ApplyAudit, error)
}

// applyRepository 申报记录仓储实现
type applyRepository struct {
	db *gorm.DB
}

// NewApplyRepository 创建申报记录仓储
func NewApplyRepository(db *gorm.DB) ApplyRepository {
	return &applyRepository{db: db}
}

// CreateAudit 创建审核记录
func (r *applyRepository) CreateAudit(record *model.ApplyAudit) error {
	return r.db.Create(record).Error
}

// CreateApprove 创建审批通过记录
func (r *applyRepository) CreateApprove(record *model.ApplyApprove) error {
	return r.db.Create(record).Error
}

// CreateReject 创建退回记录
func (r *applyRepository) CreateReject(record *model.ApplyReject) error {
	return r.db.Create(record).Error
}

// CountAuditByOrg 统计机构的审核记录总数与待审数(SUBMITTED 状态)
func (r *applyRepository) CountAuditByOrg(orgID uint) (int64, int64, error) {
	var total, pending int64
	if err := r.db.Model(&model.ApplyAudit{}).
		Where("org_id = ?", orgID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.Model(&model.ApplyAudit{}).
		Where("org_id = ? AND status = ?", orgID, model.StatusSubmitted).
		Count(&pending).Error
	return total, pending, err
}

// ListAuditByOrg 查找机构的审核记录,按创建时间倒序
func (r *applyRepository) ListAuditByOrg(orgID uint) ([]*model.ApplyAudit, error) {
	var records []*model.ApplyAudit
	err := r.db.Where("org_id = ?", orgID).
		Order("created_at DESC").Find(&records).Error
	return records, err
}
