package service

import (
	"errors"
	"time"

	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/repository"
	"gorm.io/gorm"
)

// OrgService 机构服务接口
type OrgService interface {
	Create(req *CreateOrgRequest) (*OrgView, error)
	CreateNode(req *CreateOrgRequest) (*OrgView, error)
	Get(id uint) (*OrgDetail, error)
	Update(id uint, req *UpdateOrgRequest) (*OrgView, error)
	Delete(id uint) error
	Employees(orgID uint) (*OrgEmployeesView, error)
}

// CreateOrgRequest 创建机构请求
type CreateOrgRequest struct {
	OrgName            string `json:"orgName"`
	OrgCode6           string `json:"orgCode6"`
	CityID             string `json:"cityId"`
	CountyID           string `json:"countyId"`
	ParentID           *uint  `json:"parentId"`
	LegalPersonName    string `json:"legalPersonName"`
	LegalPersonID      string `json:"legalPersonId"`
	LegalPersonIsBlind bool   `json:"legalPersonIsBlind"`
	LegalPersonDisabNo string `json:"legalPersonDisabilityNo"`
}

// UpdateOrgRequest 更新机构请求,仅覆盖提供的字段
type UpdateOrgRequest struct {
	OrgName            *string `json:"orgName"`
	OrgCode6           *string `json:"orgCode6"`
	CityID             *string `json:"cityId"`
	CountyID           *string `json:"countyId"`
	ParentID           *uint   `json:"parentId"`
	LegalPersonName    *string `json:"legalPersonName"`
	LegalPersonID      *string `json:"legalPersonId"`
	LegalPersonIsBlind *bool   `json:"legalPersonIsBlind"`
	LegalPersonDisabNo *string `json:"legalPersonDisabilityNo"`
}

// OrgView 机构序列化视图
type OrgView struct {
	OrgID              uint      `json:"orgId"`
	OrgName            string    `json:"orgName"`
	OrgCode6           string    `json:"orgCode6"`
	CityID             string    `json:"cityId"`
	CountyID           string    `json:"countyId"`
	ParentID           *uint     `json:"parentId"`
	LegalPersonName    string    `json:"legalPersonName"`
	LegalPersonID      string    `json:"legalPersonId"`
	LegalPersonIsBlind bool      `json:"legalPersonIsBlind"`
	LegalPersonDisabNo string    `json:"legalPersonDisabilityNo"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// OrgDetail 机构详情,含附件列表
type OrgDetail struct {
	OrgView
	Attachments []*AttachmentView `json:"attachments"`
}

// OrgEmployeesView 机构员工列表及统计
type OrgEmployeesView struct {
	Employees  []*EmpView     `json:"employees"`
	Statistics *EmpStatistics `json:"statistics"`
}

// EmpStatistics 员工统计信息
type EmpStatistics struct {
	Total int64   `json:"total"`
	Blind int64   `json:"blind"`
	Ratio float64 `json:"ratio"` // 盲人占比,两位小数,无员工时为 0
}

// orgService 机构服务实现
type orgService struct {
	orgRepo   repository.OrgRepository
	empRepo   repository.EmpRepository
	attachSvc OrgAttachmentLister
}

// OrgAttachmentLister 附件列表依赖,由附件服务实现
type OrgAttachmentLister interface {
	ListOrgAttachments(orgID uint) ([]*AttachmentView, error)
}

// NewOrgService 创建机构服务
func NewOrgService(orgRepo repository.OrgRepository, empRepo repository.EmpRepository, attachSvc OrgAttachmentLister) OrgService {
	return &orgService{
		orgRepo:   orgRepo,
		empRepo:   empRepo,
		attachSvc: attachSvc,
	}
}

// NewOrgView 从机构模型构建序列化视图
func NewOrgView(org *model.OrgInfo) *OrgView {
	return &OrgView{
		OrgID:              org.ID,
		OrgName:            org.OrgName,
		OrgCode6:           org.OrgCode6,
		CityID:             org.CityID,
		CountyID:           org.CountyID,
		ParentID:           org.ParentID,
		LegalPersonName:    org.LegalPersonName,
		LegalPersonID:      org.LegalPersonID,
		LegalPersonIsBlind: org.LegalPersonIsBlind,
		LegalPersonDisabNo: org.LegalPersonDisabNo,
		Status:             org.Status,
		CreatedAt:          org.CreatedAt,
		UpdatedAt:          org.UpdatedAt,
	}
}

// Create 创建机构,初始状态为草稿
func (s *orgService) Create(req *CreateOrgRequest) (*OrgView, error) {
	if req.OrgName == "" {
		return nil, NewValidationError("orgName 不能为空")
	}
	org := &model.OrgInfo{
		OrgName:            req.OrgName,
		OrgCode6:           req.OrgCode6,
		CityID:             req.CityID,
		CountyID:           req.CountyID,
		ParentID:           req.ParentID,
		LegalPersonName:    req.LegalPersonName,
		LegalPersonID:      req.LegalPersonID,
		LegalPersonIsBlind: req.LegalPersonIsBlind,
		LegalPersonDisabNo: req.LegalPersonDisabNo,
		Status:             model.StatusDraft,
	}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, err
	}
	return NewOrgView(org), nil
}

// CreateNode 创建组织树节点,同一父节点下重名时拒绝
func (s *orgService) CreateNode(req *CreateOrgRequest) (*OrgView, error) {
	if req.OrgName == "" {
		return nil, NewValidationError("orgName 不能为空")
	}
	if req.ParentID != nil {
		if _, err := s.orgRepo.FindByID(*req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewNotFoundError("父机构不存在")
			}
			return nil, err
		}
	}
	exists, err := s.orgRepo.ExistsNameUnderParent(req.OrgName, req.ParentID, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewConflictError("同级已存在同名机构")
	}
	return s.Create(req)
}

// Get 获取机构详情,含未删除的附件列表
func (s *orgService) Get(id uint) (*OrgDetail, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("机构不存在")
		}
		return nil, err
	}
	attachments, err := s.attachSvc.ListOrgAttachments(id)
	if err != nil {
		return nil, err
	}
	return &OrgDetail{OrgView: *NewOrgView(org), Attachments: attachments}, nil
}

// Update 更新机构,仅草稿或退回状态允许修改,只覆盖提供的字段
func (s *orgService) Update(id uint, req *UpdateOrgRequest) (*OrgView, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("机构不存在")
		}
		return nil, err
	}
	if !org.Editable() {
		return nil, NewStateDeniedError("仅草稿或退回状态允许修改")
	}

	if req.OrgName != nil {
		org.OrgName = *req.OrgName
	}
	if req.OrgCode6 != nil {
		org.OrgCode6 = *req.OrgCode6
	}
	if req.CityID != nil {
		org.CityID = *req.CityID
	}
	if req.CountyID != nil {
		org.CountyID = *req.CountyID
	}
	if req.ParentID != nil {
		org.ParentID = req.ParentID
	}
	if req.LegalPersonName != nil {
		org.LegalPersonName = *req.LegalPersonName
	}
	if req.LegalPersonID != nil {
		org.LegalPersonID = *req.LegalPersonID
	}
	if req.LegalPersonIsBlind != nil {
		org.LegalPersonIsBlind = *req.LegalPersonIsBlind
	}
	if req.LegalPersonDisabNo != nil {
		org.LegalPersonDisabNo = *req.LegalPersonDisabNo
	}

	if err := s.orgRepo.Update(org); err != nil {
		return nil, err
	}
	return NewOrgView(org), nil
}

// Delete 软删除机构,不级联删除子机构与员工
func (s *orgService) Delete(id uint) error {
	if _, err := s.orgRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("机构不存在")
		}
		return err
	}
	return s.orgRepo.SoftDelete(id)
}

// Employees 获取机构员工列表及统计信息
func (s *orgService) Employees(orgID uint) (*OrgEmployeesView, error) {
	if _, err := s.orgRepo.FindByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("机构不存在")
		}
		return nil, err
	}

	emps, err := s.empRepo.FindByOrg(orgID)
	if err != nil {
		return nil, err
	}
	views := make([]*EmpView, 0, len(emps))
	var blind int64
	for _, emp := range emps {
		if emp.EmpType == model.EmpTypeBlind {
			blind++
		}
		views = append(views, NewEmpView(emp))
	}

	total := int64(len(emps))
	return &OrgEmployeesView{
		Employees: views,
		Statistics: &EmpStatistics{
			Total: total,
			Blind: blind,
			Ratio: BlindRatio(blind, total),
		},
	}, nil
}

// BlindRatio 计算盲人占比,保留两位小数,总数为 0 时返回 0
func BlindRatio(blind, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(int64(float64(blind)/float64(total)*100+0.5)) / 100
}
