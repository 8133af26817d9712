package service

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/mautops/medic-gin/internal/metrics"
	"github.com/mautops/medic-gin/internal/model"
	"github.com/mautops/medic-gin/internal/repository"
	"github.com/mautops/medic-gin/internal/storage"
	"gorm.io/gorm"
)

// MaxUploadSize 上传大小上限,10 MiB
const MaxUploadSize = 10 * 1024 * 1024

// 允许上传的文件扩展名
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// AttachmentService 附件服务接口
// 覆盖机构附件与员工附件的上传、列表与删除
type AttachmentService interface {
	UploadOrgAttachment(req *UploadRequest) (*AttachmentView, error)
	UploadEmpAttachment(req *UploadRequest) (*AttachmentView, error)
	ListOrgAttachments(orgID uint) ([]*AttachmentView, error)
	ListEmpAttachments(empID uint) ([]*AttachmentView, error)
	DeleteOrgAttachment(id uint) error
	DeleteEmpAttachment(id uint) error
}

// UploadRequest 附件上传请求
type UploadRequest struct {
	OwnerID    uint      // 机构或员工 ID
	AttachType string    // 附件类型编码
	FileName   string    // 原始文件名
	FileSize   int64     // 文件大小(字节)
	Content    io.Reader // 文件内容
}

// AttachmentView 附件序列化视图
type AttachmentView struct {
	ID             uint      `json:"id"`
	OrgID          *uint     `json:"orgId,omitempty"`
	EmpID          *uint     `json:"empId,omitempty"`
	AttachType     string    `json:"attachType"`
	AttachTypeName string    `json:"attachTypeName"`
	FileName       string    `json:"fileName"`
	FilePath       string    `json:"filePath"`
	FileSize       int64     `json:"fileSize"`
	CreatedAt      time.Time `json:"createdAt"`
}

// attachmentService 附件服务实现
type attachmentService struct {
	orgRepo       repository.OrgRepository
	empRepo       repository.EmpRepository
	orgAttachRepo repository.OrgAttachRepository
	empAttachRepo repository.EmpAttachRepository
	orgTypeRepo   repository.OrgAttachTypeRepository
	empTypeRepo   repository.EmpAttachTypeRepository
	store         *storage.FileStore
}

// NewAttachmentService 创建附件服务
func NewAttachmentService(
	orgRepo repository.OrgRepository,
	empRepo repository.EmpRepository,
	orgAttachRepo repository.OrgAttachRepository,
	empAttachRepo repository.EmpAttachRepository,
	orgTypeRepo repository.OrgAttachTypeRepository,
	empTypeRepo repository.EmpAttachTypeRepository,
	store *storage.FileStore,
) AttachmentService {
	return &attachmentService{
		orgRepo:       orgRepo,
		empRepo:       empRepo,
		orgAttachRepo: orgAttachRepo,
		empAttachRepo: empAttachRepo,
		orgTypeRepo:   orgTypeRepo,
		empTypeRepo:   empTypeRepo,
		store:         store,
	}
}

// validateUpload 上传前置校验,全部通过之前不落盘、不建记录
func validateUpload(req *UploadRequest, ownerField string) error {
	if req.OwnerID == 0 || req.AttachType == "" {
		return NewValidationError("%s 与 attachType 不能为空", ownerField)
	}
	if req.FileName == "" || req.Content == nil {
		return NewValidationError("文件不能为空")
	}
	if req.FileSize > MaxUploadSize {
		return NewTooLargeError("文件大小不能超过10MB")
	}
	ext := strings.ToLower(filepath.Ext(req.FileName))
	if !allowedExtensions[ext] {
		return NewUnsupportedError("不支持的文件格式: %s", ext)
	}
	return nil
}

// UploadOrgAttachment 上传机构附件
func (s *attachmentService) UploadOrgAttachment(req *UploadRequest) (*AttachmentView, error) {
	if err := validateUpload(req, "orgId"); err != nil {
		return nil, err
	}
	if _, err := s.orgRepo.FindByID(req.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("机构不存在")
		}
		return nil, err
	}
	attachType, err := s.orgTypeRepo.FindByCode(req.AttachType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("附件类型不存在")
		}
		return nil, err
	}

	_, fileURL, err := s.store.Save(storage.OrgAttachPrefix, req.FileName, req.Content)
	if err != nil {
		return nil, err
	}

	record := &model.OrgAttach{
		OrgID:        req.OwnerID,
		AttachTypeID: attachType.ID,
		FileName:     req.FileName,
		FilePath:     fileURL,
		FileSize:     req.FileSize,
	}
	if err := s.orgAttachRepo.Create(record); err != nil {
		return nil, err
	}

	metrics.RecordUpload(storage.OrgAttachPrefix, req.FileSize)
	orgID := req.OwnerID
	return &AttachmentView{
		ID:             record.ID,
		OrgID:          &orgID,
		AttachType:     attachType.Code,
		AttachTypeName: attachType.Name,
		FileName:       record.FileName,
		FilePath:       record.FilePath,
		FileSize:       record.FileSize,
		CreatedAt:      record.CreatedAt,
	}, nil
}

// UploadEmpAttachment 上传员工附件
func (s *attachmentService) UploadEmpAttachment(req *UploadRequest) (*AttachmentView, error) {
	if err := validateUpload(req, "empId"); err != nil {
		return nil, err
	}
	if _, err := s.empRepo.FindByID(req.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("员工不存在")
		}
		return nil, err
	}
	attachType, err := s.empTypeRepo.FindByCode(req.AttachType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("附件类型不存在")
		}
		return nil, err
	}

	_, fileURL, err := s.store.Save(storage.EmpAttachPrefix, req.FileName, req.Content)
	if err != nil {
		return nil, err
	}

	record := &model.EmpAttach{
		EmpID:        req.OwnerID,
		AttachTypeID: attachType.ID,
		FileName:     req.FileName,
		FilePath:     fileURL,
		FileSize:     req.FileSize,
	}
	if err := s.empAttachRepo.Create(record); err != nil {
		return nil, err
	}

	metrics.RecordUpload(storage.EmpAttachPrefix, req.FileSize)
	empID := req.OwnerID
	return &AttachmentView{
		ID:             record.ID,
		EmpID:          &empID,
		AttachType:     attachType.Code,
		AttachTypeName: attachType.Name,
		FileName:       record.FileName,
		FilePath:       record.FilePath,
		FileSize:       record.FileSize,
		CreatedAt:      record.CreatedAt,
	}, nil
}

// ListOrgAttachments 查询机构附件列表,按上传时间倒序
func (s *attachmentService) ListOrgAttachments(orgID uint) ([]*AttachmentView, error) {
	records, err := s.orgAttachRepo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	views := make([]*AttachmentView, 0, len(records))
	for _, record := range records {
		view := &AttachmentView{
			ID:        record.ID,
			FileName:  record.FileName,
			FilePath:  record.FilePath,
			FileSize:  record.FileSize,
			CreatedAt: record.CreatedAt,
		}
		id := record.OrgID
		view.OrgID = &id
		if attachType, err := s.orgTypeRepo.FindByID(record.AttachTypeID); err == nil {
			view.AttachType = attachType.Code
			view.AttachTypeName = attachType.Name
		}
		views = append(views, view)
	}
	return views, nil
}

// ListEmpAttachments 查询员工附件列表,按上传时间倒序
func (s *attachmentService) ListEmpAttachments(empID uint) ([]*AttachmentView, error) {
	records, err := s.empAttachRepo.ListByEmp(empID)
	if err != nil {
		return nil, err
	}
	views := make([]*AttachmentView, 0, len(records))
	for _, record := range records {
		view := &AttachmentView{
			ID:        record.ID,
			FileName:  record.FileName,
			FilePath:  record.FilePath,
			FileSize:  record.FileSize,
			CreatedAt: record.CreatedAt,
		}
		id := record.EmpID
		view.EmpID = &id
		if attachType, err := s.empTypeRepo.FindByID(record.AttachTypeID); err == nil {
			view.AttachType = attachType.Code
			view.AttachTypeName = attachType.Name
		}
		views = append(views, view)
	}
	return views, nil
}

// DeleteOrgAttachment 软删除机构附件记录并清理底层文件
// 文件缺失不视为错误,删除操作可幂等重放
func (s *attachmentService) DeleteOrgAttachment(id uint) error {
	record, err := s.orgAttachRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("附件不存在")
		}
		return err
	}
	if err := s.orgAttachRepo.SoftDelete(id); err != nil {
		return err
	}
	return s.store.Remove(record.FilePath)
}

// DeleteEmpAttachment 软删除员工附件记录并清理底层文件
func (s *attachmentService) DeleteEmpAttachment(id uint) error {
	record, err := s.empAttachRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("附件不存在")
		}
		return err
	}
	if err := s.empAttachRepo.SoftDelete(id); err != nil {
		return err
	}
	return s.store.Remove(record.FilePath)
}
