package model

import "time"

// OrgAttachType 机构附件类型字典
type OrgAttachType struct {
	ID          uint      `gorm:"primaryKey"`
	Code        string    `gorm:"type:varchar(64);not null;uniqueIndex"` // 附件类型编码
	Name        string    `gorm:"type:varchar(128);not null"`            // 附件类型名称
	Description string    `gorm:"type:varchar(255)"`                     // 描述
	Category    string    `gorm:"type:varchar(64)"`                      // 分类
	IsRequired  bool      `gorm:"not null;default:false"`                // 是否必填
	SortOrder   int       `gorm:"not null;default:0"`                    // 排序
	IsDelete    bool      `gorm:"not null;default:false;index"`          // 软删除标记
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName 指定表名
func (OrgAttachType) TableName() string {
	return "medic_org_attach_type"
}

// EmpAttachType 员工附件类型字典
type EmpAttachType struct {
	ID          uint      `gorm:"primaryKey"`
	Code        string    `gorm:"type:varchar(64);not null;uniqueIndex"` // 附件类型编码
	Name        string    `gorm:"type:varchar(128);not null"`            // 附件类型名称
	Description string    `gorm:"type:varchar(255)"`                     // 描述
	Category    string    `gorm:"type:varchar(64)"`                      // 分类
	IsRequired  bool      `gorm:"not null;default:false"`                // 是否必填
	SortOrder   int       `gorm:"not null;default:0"`                    // 排序
	IsDelete    bool      `gorm:"not null;default:false;index"`          // 软删除标记
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName 指定表名
func (EmpAttachType) TableName() string {
	return "medic_emp_attach_type"
}

// AttachTypeSeed 附件类型字典种子项
type AttachTypeSeed struct {
	Code string
	Name string
}

// DefaultOrgAttachTypes 机构附件类型默认目录
var DefaultOrgAttachTypes = []AttachTypeSeed{
	{Code: "BUSINESS_LICENSE", Name: "营业执照"},
	{Code: "PRACTICE_PERMIT", Name: "医疗执业许可证"},
	{Code: "TAX_REG", Name: "税务登记"},
	{Code: "BANK_ACCOUNT", Name: "开户许可证"},
	{Code: "LEGAL_ID", Name: "法人身份证"},
	{Code: "SITE_CONTRACT", Name: "场地租赁合同"},
	{Code: "HYGIENE_PERMIT", Name: "卫生许可证"},
	{Code: "OTHER", Name: "其他"},
}

// DefaultEmpAttachTypes 员工附件类型默认目录
var DefaultEmpAttachTypes = []AttachTypeSeed{
	{Code: "ID_CARD", Name: "身份证"},
	{Code: "HEALTH_CERT", Name: "健康证"},
	{Code: "CONTRACT", Name: "劳动合同"},
	{Code: "QUALIFICATION", Name: "职业资格证"},
	{Code: "PHOTO", Name: "个人照片"},
}
