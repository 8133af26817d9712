package service

import (
	"errors"
	"time"

	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/repository"
	"gorm.io/gorm"
)

// EmpService 员工服务接口
type EmpService interface {
	Create(req *CreateEmpRequest) (*EmpView, error)
	BatchCreate(req *BatchCreateEmpRequest) []*BatchEmpResult
	Get(id uint) (*EmpDetail, error)
	Update(id uint, req *UpdateEmpRequest) (*EmpView, error)
	Delete(id uint) error
}

// CreateEmpRequest 创建员工请求
type CreateEmpRequest struct {
	OrgID         uint   `json:"orgId"`
	EmpName       string `json:"empName"`
	EmpType       string `json:"empType"`
	IDNumber      string `json:"idNumber"`
	Phone         string `json:"phone"`
	IsLegalPerson bool   `json:"isLegalPerson"`
	DisabilityNo  string `json:"disabilityNo"`
}

// UpdateEmpRequest 更新员工请求,仅覆盖提供的字段
type UpdateEmpRequest struct {
	OrgID         *uint   `json:"orgId"`
	EmpName       *string `json:"empName"`
	EmpType       *string `json:"empType"`
	IDNumber      *string `json:"idNumber"`
	Phone         *string `json:"phone"`
	IsLegalPerson *bool   `json:"isLegalPerson"`
	DisabilityNo  *string `json:"disabilityNo"`
}

// BatchCreateEmpRequest 批量创建员工请求
type BatchCreateEmpRequest struct {
	Employees []*CreateEmpRequest `json:"employees"`
}

// BatchEmpResult 批量创建的单条结果
type BatchEmpResult struct {
	EmpID   uint   `json:"empId,omitempty"`
	OrgID   uint   `json:"orgId"`
	EmpName string `json:"empName"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// EmpView 员工序列化视图
type EmpView struct {
	EmpID         uint      `json:"empId"`
	OrgID         uint      `json:"orgId"`
	EmpName       string    `json:"empName"`
	EmpType       string    `json:"empType"`
	IDNumber      string    `json:"idNumber"`
	Phone         string    `json:"phone"`
	IsLegalPerson bool      `json:"isLegalPerson"`
	DisabilityNo  string    `json:"disabilityNo"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EmpDetail 员工详情,含附件列表
type EmpDetail struct {
	EmpView
	Attachments []*AttachmentView `json:"attachments"`
}

// EmpAttachmentLister 附件列表依赖,由附件服务实现
type EmpAttachmentLister interface {
	ListEmpAttachments(empID uint) ([]*AttachmentView, error)
}

// empService 员工服务实现
type empService struct {
	empRepo   repository.EmpRepository
	orgRepo   repository.OrgRepository
	attachSvc EmpAttachmentLister
}

// NewEmpService 创建员工服务
func NewEmpService(empRepo repository.EmpRepository, orgRepo repository.OrgRepository, attachSvc EmpAttachmentLister) EmpService {
	return &empService{
		empRepo:   empRepo,
		orgRepo:   orgRepo,
		attachSvc: attachSvc,
	}
}

// NewEmpView 从员工模型构建序列化视图
func NewEmpView(emp *model.EmpInfo) *EmpView {
	return &EmpView{
		EmpID:         emp.ID,
		OrgID:         emp.OrgID,
		EmpName:       emp.EmpName,
		EmpType:       emp.EmpType,
		IDNumber:      emp.IDNumber,
		Phone:         emp.Phone,
		IsLegalPerson: emp.IsLegalPerson,
		DisabilityNo:  emp.DisabilityNo,
		CreatedAt:     emp.CreatedAt,
		UpdatedAt:     emp.UpdatedAt,
	}
}

// checkDuplicate 跨机构挂靠检查
// 同一证件号不允许出现在其他机构,法人且盲人类型的员工除外
func (s *empService) checkDuplicate(idNumber string, orgID uint, excludeEmpID uint, isLegalPerson bool, empType string) error {
	others, err := s.empRepo.FindOtherOrgByIDNumber(idNumber, orgID, excludeEmpID)
	if err != nil {
		return err
	}
	if len(others) == 0 {
		return nil
	}
	if isLegalPerson && empType == model.EmpTypeBlind {
		return nil
	}
	return NewConflictError("存在跨机构挂靠的员工记录")
}

// Create 创建员工
func (s *empService) Create(req *CreateEmpRequest) (*EmpView, error) {
	if req.OrgID == 0 || req.EmpType == "" || req.IDNumber == "" {
		return nil, NewValidationError("orgId、empType、idNumber 均不能为空")
	}
	empType := model.NormalizeEmpType(req.EmpType)
	if !model.ValidEmpType(empType) {
		return nil, NewValidationError("无效的员工类型: %s", req.EmpType)
	}
	if empType == model.EmpTypeBlind && req.DisabilityNo == "" {
		return nil, NewValidationError("盲人员工必须填写残疾证号")
	}

	if _, err := s.orgRepo.FindByID(req.OrgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("机构不存在")
		}
		return nil, err
	}

	if err := s.checkDuplicate(req.IDNumber, req.OrgID, 0, req.IsLegalPerson, empType); err != nil {
		return nil, err
	}

	emp := &model.EmpInfo{
		OrgID:         req.OrgID,
		EmpName:       req.EmpName,
		EmpType:       empType,
		IDNumber:      req.IDNumber,
		Phone:         req.Phone,
		IsLegalPerson: req.IsLegalPerson,
		DisabilityNo:  req.DisabilityNo,
	}
	if err := s.empRepo.Create(emp); err != nil {
		return nil, err
	}
	return NewEmpView(emp), nil
}

// BatchCreate 批量创建员工,逐条返回结果,单条失败不影响其余记录
func (s *empService) BatchCreate(req *BatchCreateEmpRequest) []*BatchEmpResult {
	results := make([]*BatchEmpResult, 0, len(req.Employees))
	for _, item := range req.Employees {
		if item.EmpType == "" {
			item.EmpType = model.EmpTypeOther
		}
		view, err := s.Create(item)
		if err != nil {
			results = append(results, &BatchEmpResult{
				OrgID:   item.OrgID,
				EmpName: item.EmpName,
				Success: false,
				Message: err.Error(),
			})
			continue
		}
		results = append(results, &BatchEmpResult{
			EmpID:   view.EmpID,
			OrgID:   view.OrgID,
			EmpName: view.EmpName,
			Success: true,
		})
	}
	return results
}

// Get 获取员工详情,含未删除的附件列表
func (s *empService) Get(id uint) (*EmpDetail, error) {
	emp, err := s.empRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("员工不存在")
		}
		return nil, err
	}
	attachments, err := s.attachSvc.ListEmpAttachments(id)
	if err != nil {
		return nil, err
	}
	return &EmpDetail{EmpView: *NewEmpView(emp), Attachments: attachments}, nil
}

// Update 更新员工,仅覆盖提供的字段
func (s *empService) Update(id uint, req *UpdateEmpRequest) (*EmpView, error) {
	emp, err := s.empRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("员工不存在")
		}
		return nil, err
	}

	orgID := emp.OrgID
	if req.OrgID != nil {
		orgID = *req.OrgID
	}
	idNumber := emp.IDNumber
	if req.IDNumber != nil {
		idNumber = *req.IDNumber
	}
	if idNumber == "" {
		return nil, NewValidationError("idNumber 不能为空")
	}
	empType := emp.EmpType
	if req.EmpType != nil {
		empType = model.NormalizeEmpType(*req.EmpType)
		if !model.ValidEmpType(empType) {
			return nil, NewValidationError("无效的员工类型: %s", *req.EmpType)
		}
	}
	isLegalPerson := emp.IsLegalPerson
	if req.IsLegalPerson != nil {
		isLegalPerson = *req.IsLegalPerson
	}
	disabilityNo := emp.DisabilityNo
	if req.DisabilityNo != nil {
		disabilityNo = *req.DisabilityNo
	}
	if empType == model.EmpTypeBlind && disabilityNo == "" {
		return nil, NewValidationError("盲人员工必须填写残疾证号")
	}

	if err := s.checkDuplicate(idNumber, orgID, id, isLegalPerson, empType); err != nil {
		return nil, err
	}

	if orgID != emp.OrgID {
		if _, err := s.orgRepo.FindByID(orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewNotFoundError("目标机构不存在")
			}
			return nil, err
		}
		emp.OrgID = orgID
	}
	if req.EmpName != nil {
		emp.EmpName = *req.EmpName
	}
	emp.EmpType = empType
	emp.IDNumber = idNumber
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	emp.IsLegalPerson = isLegalPerson
	emp.DisabilityNo = disabilityNo

	if err := s.empRepo.Update(emp); err != nil {
		return nil, err
	}
	return NewEmpView(emp), nil
}

// Delete 软删除员工
func (s *empService) Delete(id uint) error {
	if _, err := s.empRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("员工不存在")
		}
		return err
	}
	return s.empRepo.SoftDelete(id)
}
