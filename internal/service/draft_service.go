package service

import (
	"encoding/json"
	"errors"

	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/repository"
	"gorm.io/gorm"
)

// DraftService 草稿服务接口
type DraftService interface {
	Save(payload json.RawMessage) (*DraftResult, error)
}

// DraftResult 草稿保存结果
type DraftResult struct {
	DraftID uint  `json:"draftId"`
	OrgID   *uint `json:"orgId"`
}

// draftPayload 草稿快照中参与机构补建的字段
type draftPayload struct {
	OrgID    *uint  `json:"orgId"`
	OrgName  string `json:"orgName"`
	OrgCode6 string `json:"orgCode6"`
	CityID   string `json:"cityId"`
	CountyID string `json:"countyId"`
}

// draftService 草稿服务实现
type draftService struct {
	orgRepo   repository.OrgRepository
	applyRepo repository.ApplyRepository
	db        *gorm.DB
}

// NewDraftService 创建草稿服务
func NewDraftService(orgRepo repository.OrgRepository, applyRepo repository.ApplyRepository, db *gorm.DB) DraftService {
	return &draftService{
		orgRepo:   orgRepo,
		applyRepo: applyRepo,
		db:        db,
	}
}

// Save 保存草稿快照
// 携带 orgId 但机构不存在时,用快照字段补建机构桩记录;
// 无论机构是否解析成功,审核表中总会落一条 DRAFT 状态的快照
func (s *draftService) Save(payload json.RawMessage) (*DraftResult, error) {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	var fields draftPayload
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, NewValidationError("无效的草稿数据")
	}

	var orgID *uint
	if fields.OrgID != nil && *fields.OrgID != 0 {
		org, err := s.resolveOrCreateOrg(*fields.OrgID, &fields)
		if err != nil {
			return nil, err
		}
		orgID = &org.ID
	}

	draft := &model.ApplyAudit{
		OrgID:   orgID,
		Payload: payload,
		Status:  model.StatusDraft,
	}
	if err := s.applyRepo.CreateAudit(draft); err != nil {
		return nil, err
	}

	return &DraftResult{DraftID: draft.ID, OrgID: orgID}, nil
}

// resolveOrCreateOrg 解析机构引用,不存在时以快照字段补建
// 查找不过滤软删除标记,已删除的机构直接按原记录复用,避免主键冲突
func (s *draftService) resolveOrCreateOrg(orgID uint, fields *draftPayload) (*model.OrgInfo, error) {
	org, err := s.orgRepo.FindByIDAny(orgID)
	if err == nil {
		return org, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stub := &model.OrgInfo{
		ID:       orgID,
		OrgName:  fields.OrgName,
		OrgCode6: fields.OrgCode6,
		CityID:   fields.CityID,
		CountyID: fields.CountyID,
		Status:   model.StatusDraft,
	}
	if err := s.db.Create(stub).Error; err != nil {
		return nil, err
	}
	return stub, nil
}
