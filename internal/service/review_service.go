package service

import (
	"encoding/json"
	"errors"

	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/repository"
	"gorm.io/gorm"
)

// ReviewService 审核流转服务接口
// 驱动机构状态机: DRAFT/REJECTED -> SUBMITTED -> APPROVED | REJECTED
type ReviewService interface {
	Submit(orgID uint) (*OrgView, error)
	Approve(orgID uint) (*OrgView, error)
	Reject(orgID uint, reason string) (*OrgView, error)
}

// reviewService 审核流转服务实现
type reviewService struct {
	orgRepo   repository.OrgRepository
	applyRepo repository.ApplyRepository
}

// NewReviewService 创建审核流转服务
func NewReviewService(orgRepo repository.OrgRepository, applyRepo repository.ApplyRepository) ReviewService {
	return &reviewService{
		orgRepo:   orgRepo,
		applyRepo: applyRepo,
	}
}

func (s *reviewService) find(orgID uint) (*model.OrgInfo, error) {
	org, err := s.orgRepo.FindByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("机构不存在")
		}
		return nil, err
	}
	return org, nil
}

// snapshot 序列化机构当前字段,作为申报快照落库
func snapshot(org *model.OrgInfo) []byte {
	data, err := json.Marshal(NewOrgView(org))
	if err != nil {
		return []byte("{}")
	}
	return data
}

// Submit 提交机构进入审核,仅草稿或退回状态允许提交
func (s *reviewService) Submit(orgID uint) (*OrgView, error) {
	org, err := s.find(orgID)
	if err != nil {
		return nil, err
	}
	if !org.Editable() {
		return nil, NewStateDeniedError("仅草稿或退回状态允许提交")
	}

	org.Status = model.StatusSubmitted
	if err := s.orgRepo.Update(org); err != nil {
		return nil, err
	}

	id := org.ID
	record := &model.ApplyAudit{
		OrgID:   &id,
		Payload: snapshot(org),
		Status:  model.StatusSubmitted,
	}
	if err := s.applyRepo.CreateAudit(record); err != nil {
		return nil, err
	}
	return NewOrgView(org), nil
}

// Approve 审核通过,仅已提交状态允许
func (s *reviewService) Approve(orgID uint) (*OrgView, error) {
	org, err := s.find(orgID)
	if err != nil {
		return nil, err
	}
	if org.Status != model.StatusSubmitted {
		return nil, NewStateDeniedError("仅已提交状态允许审核通过")
	}

	org.Status = model.StatusApproved
	if err := s.orgRepo.Update(org); err != nil {
		return nil, err
	}

	id := org.ID
	record := &model.ApplyApprove{
		OrgID:   &id,
		Payload: snapshot(org),
		Status:  model.StatusApproved,
	}
	if err := s.applyRepo.CreateApprove(record); err != nil {
		return nil, err
	}
	return NewOrgView(org), nil
}

// Reject 审核退回,仅已提交状态允许,退回后机构可重新编辑
func (s *reviewService) Reject(orgID uint, reason string) (*OrgView, error) {
	org, err := s.find(orgID)
	if err != nil {
		return nil, err
	}
	if org.Status != model.StatusSubmitted {
		return nil, NewStateDeniedError("仅已提交状态允许退回")
	}

	org.Status = model.StatusRejected
	if err := s.orgRepo.Update(org); err != nil {
		return nil, err
	}

	id := org.ID
	record := &model.ApplyReject{
		OrgID:   &id,
		Payload: snapshot(org),
		Status:  model.StatusRejected,
		Reason:  reason,
	}
	if err := s.applyRepo.CreateReject(record); err != nil {
		return nil, err
	}
	return NewOrgView(org), nil
}
