package repository

import (
	"github.com/mautops/medic-gin/internal/model"
	"gorm.io/gorm"
)

// OrgRepository 机构仓储接口
type OrgRepository interface {
	Create(org *model.OrgInfo) error
	FindByID(id uint) (*model.OrgInfo, error)
	FindByIDAny(id uint) (*model.OrgInfo, error)
	FindByFilter(filter *OrgFilter) ([]*model.OrgInfo, error)
	Update(org *model.OrgInfo) error
	SoftDelete(id uint) error
	ExistsNameUnderParent(name string, parentID *uint, excludeID uint) (bool, error)
}

// OrgFilter 机构查询过滤器
type OrgFilter struct {
	CityID   *string
	CountyID *string
	OrgCode6 *string
}

// orgRepository 机构仓储实现
type orgRepository struct {
	db *gorm.DB
}

// NewOrgRepository 创建机构仓储
func NewOrgRepository(db *gorm.DB) OrgRepository {
	return &orgRepository{db: db}
}

// Create 创建机构
func (r *orgRepository) Create(org *model.OrgInfo) error {
	return r.db.Create(org).Error
}

// FindByID 根据 ID 查找未删除的机构
func (r *orgRepository) FindByID(id uint) (*model.OrgInfo, error) {
	var org model.OrgInfo
	if err := r.db.Where("id = ? AND is_delete = ?", id, false).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindByIDAny 根据 ID 查找机构,忽略软删除标记
func (r *orgRepository) FindByIDAny(id uint) (*model.OrgInfo, error) {
	var org model.OrgInfo
	if err := r.db.Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindByFilter 根据过滤器查找未删除的机构
func (r *orgRepository) FindByFilter(filter *OrgFilter) ([]*model.OrgInfo, error) {
	var orgs []*model.OrgInfo
	query := r.db.Model(&model.OrgInfo{}).Where("is_delete = ?", false)

	if filter != nil {
		if filter.CityID != nil {
			query = query.Where("city_id = ?", *filter.CityID)
		}
		if filter.CountyID != nil {
			query = query.Where("county_id = ?", *filter.CountyID)
		}
		if filter.OrgCode6 != nil {
			query = query.Where("org_code6 = ?", *filter.OrgCode6)
		}
	}

	err := query.Order("city_id, county_id, id").Find(&orgs).Error
	return orgs, err
}

// Update 保存机构变更
func (r *orgRepository) Update(org *model.OrgInfo) error {
	return r.db.Save(org).Error
}

// SoftDelete 软删除机构
func (r *orgRepository) SoftDelete(id uint) error {
	return r.db.Model(&model.OrgInfo{}).
		Where("id = ?", id).
		Update("is_delete", true).Error
}

// ExistsNameUnderParent 判断同一父节点下是否已存在同名机构
func (r *orgRepository) ExistsNameUnderParent(name string, parentID *uint, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.OrgInfo{}).
		Where("org_name = ? AND is_delete = ?", name, false)
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
