package service

import (
	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/repository"
)

// DictService 字典服务接口,提供附件类型与员工类型目录
type DictService interface {
	OrgAttachTypes() ([]*AttachTypeView, error)
	EmpAttachTypes() ([]*AttachTypeView, error)
	EmpTypes() []*EmpTypeView
}

// AttachTypeView 附件类型序列化视图
type AttachTypeView struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsRequired  bool   `json:"isRequired"`
}

// EmpTypeView 员工类型字典项
type EmpTypeView struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// dictService 字典服务实现
type dictService struct {
	orgTypeRepo repository.OrgAttachTypeRepository
	empTypeRepo repository.EmpAttachTypeRepository
}

// NewDictService 创建字典服务
func NewDictService(orgTypeRepo repository.OrgAttachTypeRepository, empTypeRepo repository.EmpAttachTypeRepository) DictService {
	return &dictService{
		orgTypeRepo: orgTypeRepo,
		empTypeRepo: empTypeRepo,
	}
}

// OrgAttachTypes 机构附件类型目录
func (s *dictService) OrgAttachTypes() ([]*AttachTypeView, error) {
	types, err := s.orgTypeRepo.FindAllActive()
	if err != nil {
		return nil, err
	}
	views := make([]*AttachTypeView, 0, len(types))
	for _, item := range types {
		views = append(views, &AttachTypeView{
			ID:          item.ID,
			Code:        item.Code,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			IsRequired:  item.IsRequired,
		})
	}
	return views, nil
}

// EmpAttachTypes 员工附件类型目录
func (s *dictService) EmpAttachTypes() ([]*AttachTypeView, error) {
	types, err := s.empTypeRepo.FindAllActive()
	if err != nil {
		return nil, err
	}
	views := make([]*AttachTypeView, 0, len(types))
	for _, item := range types {
		views = append(views, &AttachTypeView{
			ID:          item.ID,
			Code:        item.Code,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			IsRequired:  item.IsRequired,
		})
	}
	return views, nil
}

// EmpTypes 员工类型静态目录
func (s *dictService) EmpTypes() []*EmpTypeView {
	return []*EmpTypeView{
		{Code: model.EmpTypeBlind, Name: "盲人"},
		{Code: model.EmpTypeAbleBodied, Name: "健全"},
		{Code: model.EmpTypeOther, Name: "其他"},
	}
}
