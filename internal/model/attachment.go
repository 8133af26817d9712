package model

import "time"

// OrgAttach 机构附件记录
type OrgAttach struct {
	ID           uint      `gorm:"primaryKey"`
	OrgID        uint      `gorm:"not null;index"`               // 所属机构 ID
	AttachTypeID uint      `gorm:"not null;index"`               // 附件类型 ID
	FileName     string    `gorm:"type:varchar(255);not null"`   // 原始文件名
	FilePath     string    `gorm:"type:varchar(255);not null"`   // 文件路径(URL)
	FileSize     int64     `gorm:"not null;default:0"`           // 文件大小(字节)
	IsDelete     bool      `gorm:"not null;default:false;index"` // 软删除标记
	CreatedAt    time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName 指定表名
func (OrgAttach) TableName() string {
	return "medic_org_attach"
}

// EmpAttach 员工附件记录
type EmpAttach struct {
	ID           uint      `gorm:"primaryKey"`
	EmpID        uint      `gorm:"not null;index"`               // 所属员工 ID
	AttachTypeID uint      `gorm:"not null;index"`               // 附件类型 ID
	FileName     string    `gorm:"type:varchar(255);not null"`   // 原始文件名
	FilePath     string    `gorm:"type:varchar(255);not null"`   // 文件路径(URL)
	FileSize     int64     `gorm:"not null;default:0"`           // 文件大小(字节)
	IsDelete     bool      `gorm:"not null;default:false;index"` // 软删除标记
	CreatedAt    time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName 指定表名
func (EmpAttach) TableName() string {
	return "medic_emp_attach"
}
