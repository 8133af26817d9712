package model

import "time"

// 申报记录种类,区分三张申报表
const (
	ApplyKindAudit   = "audit"
	ApplyKindApprove = "approve"
	ApplyKindReject  = "reject"
)

// ApplyAudit 审核记录,保存申报数据快照
type ApplyAudit struct {
	ID        uint      `gorm:"primaryKey"`
	OrgID     *uint     `gorm:"index"`                           // 关联机构 ID(可空)
	EmpID     *uint     `gorm:"index"`                           // 关联员工 ID(可空)
	Payload   []byte    `gorm:"type:jsonb;not null"`             // 数据快照
	Status    string    `gorm:"type:varchar(32);not null;index"` // 状态
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName 指定表名
func (ApplyAudit) TableName() string {
	return "medic_apply_audit"
}

// ApplyApprove 审批通过记录
type ApplyApprove struct {
	ID        uint      `gorm:"primaryKey"`
	OrgID     *uint     `gorm:"index"`
	EmpID     *uint     `gorm:"index"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	Status    string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName 指定表名
func (ApplyApprove) TableName() string {
	return "medic_apply_approve"
}

// ApplyReject 退回记录
type ApplyReject struct {
	ID        uint      `gorm:"primaryKey"`
	OrgID     *uint     `gorm:"index"`
	EmpID     *uint     `gorm:"index"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	Status    string    `gorm:"type:varchar(32);not null;index"`
	Reason    string    `gorm:"type:varchar(255)"` // 退回原因
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName 指定表名
func (ApplyReject) TableName() string {
	return "medic_apply_reject"
}
