package model

import (
	"errors"
	"time"
)

// 员工类型
const (
	EmpTypeBlind      = "BLIND"       // 盲人
	EmpTypeAbleBodied = "ABLE_BODIED" // 健全
	EmpTypeOther      = "OTHER"       // 其他

	// EmpTypeHealthy 旧版枚举值,写入时归一化为 ABLE_BODIED
	EmpTypeHealthy = "HEALTHY"
)

// NormalizeEmpType 归一化员工类型,兼容旧版 HEALTHY 枚举
func NormalizeEmpType(empType string) string {
	if empType == EmpTypeHealthy {
		return EmpTypeAbleBodied
	}
	return empType
}

// ValidEmpType 判断员工类型是否合法(归一化之后)
func ValidEmpType(empType string) bool {
	switch empType {
	case EmpTypeBlind, EmpTypeAbleBodied, EmpTypeOther:
		return true
	}
	return false
}

// EmpInfo 员工信息数据模型
type EmpInfo struct {
	ID            uint      `gorm:"primaryKey"`
	OrgID         uint      `gorm:"not null;index"`                   // 所属机构 ID
	EmpName       string    `gorm:"type:varchar(255);not null"`       // 员工姓名
	EmpType       string    `gorm:"type:varchar(32);not null;index"`  // 员工类型
	IDNumber      string    `gorm:"type:varchar(64);not null;index"`  // 证件号
	Phone         string    `gorm:"type:varchar(32)"`                 // 联系电话
	IsLegalPerson bool      `gorm:"not null;default:false"`           // 是否法人
	DisabilityNo  string    `gorm:"type:varchar(64)"`                 // 残疾证号
	IsDelete      bool      `gorm:"not null;default:false;index"`     // 软删除标记
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName 指定表名
func (EmpInfo) TableName() string {
	return "medic_emp_info"
}

// Validate 验证员工模型
func (e *EmpInfo) Validate() error {
	if e.OrgID == 0 {
		return errors.New("org ID is required")
	}
	if e.IDNumber == "" {
		return errors.New("id number is required")
	}
	if !ValidEmpType(e.EmpType) {
		return errors.New("invalid employee type")
	}
	if e.EmpType == EmpTypeBlind && e.DisabilityNo == "" {
		return errors.New("blind employee requires a disability certificate number")
	}
	return nil
}
