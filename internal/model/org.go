package model

import (
	"errors"
	"time"
)

// 机构状态
const (
	StatusDraft     = "DRAFT"     // 草稿
	StatusSubmitted = "SUBMITTED" // 已提交
	StatusApproved  = "APPROVED"  // 通过
	StatusRejected  = "REJECTED"  // 退回
)

// OrgInfo 机构信息数据模型
type OrgInfo struct {
	ID                  uint      `gorm:"primaryKey"`
	OrgName             string    `gorm:"type:varchar(255);not null;index"` // 机构名称
	OrgCode6            string    `gorm:"type:varchar(64);index"`           // 机构代码
	CityID              string    `gorm:"type:varchar(64);index"`           // 城市 ID
	CountyID            string    `gorm:"type:varchar(64);index"`           // 区县 ID
	LegalPersonName     string    `gorm:"type:varchar(128)"`                // 法定代表人姓名
	LegalPersonID       string    `gorm:"type:varchar(64)"`                 // 法定代表人证件号
	LegalPersonIsBlind  bool      `gorm:"not null;default:false"`           // 法人是否盲人
	LegalPersonDisabNo  string    `gorm:"column:legal_person_disability_no;type:varchar(64)"` // 法人残疾证号
	ParentID            *uint     `gorm:"index"`                            // 父节点 ID
	Status              string    `gorm:"type:varchar(32);not null;default:DRAFT;index"` // 状态
	IsDelete            bool      `gorm:"not null;default:false;index"`     // 软删除标记
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName 指定表名
func (OrgInfo) TableName() string {
	return "medic_org_info"
}

// Editable 仅草稿或退回状态允许修改
func (o *OrgInfo) Editable() bool {
	return o.Status == StatusDraft || o.Status == StatusRejected
}

// Validate 验证机构模型
func (o *OrgInfo) Validate() error {
	if o.OrgName == "" {
		return errors.New("org name is required")
	}
	if o.Status == "" {
		return errors.New("org status is required")
	}
	return nil
}
