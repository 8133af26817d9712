package api

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/service"
)

// AttachmentController 附件控制器
// 机构附件与员工附件共用一套处理逻辑,仅所属实体不同
type AttachmentController struct {
	attachService service.AttachmentService
}

// NewAttachmentController 创建附件控制器
func NewAttachmentController(attachService service.AttachmentService) *AttachmentController {
	return &AttachmentController{attachService: attachService}
}

// buildUploadRequest 从 multipart 表单解析上传请求
// 返回的文件句柄由调用方负责关闭
func buildUploadRequest(ctx *gin.Context, ownerField string) (*service.UploadRequest, multipart.File, bool) {
	ownerRaw := ctx.PostForm(ownerField)
	attachType := ctx.PostForm("attachType")
	if ownerRaw == "" || attachType == "" {
		Error(ctx, http.StatusBadRequest, ownerField+" 与 attachType 不能为空")
		return nil, nil, false
	}
	ownerID, err := strconv.ParseUint(ownerRaw, 10, 64)
	if err != nil || ownerID == 0 {
		Error(ctx, http.StatusBadRequest, "无效的 "+ownerField)
		return nil, nil, false
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		Error(ctx, http.StatusBadRequest, "文件不能为空")
		return nil, nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		Error(ctx, http.StatusBadRequest, "无法读取上传文件")
		return nil, nil, false
	}

	return &service.UploadRequest{
		OwnerID:    uint(ownerID),
		AttachType: attachType,
		FileName:   fileHeader.Filename,
		FileSize:   fileHeader.Size,
		Content:    file,
	}, file, true
}

// UploadOrgAttachment 上传机构附件
func (c *AttachmentController) UploadOrgAttachment(ctx *gin.Context) {
	req, file, ok := buildUploadRequest(ctx, "orgId")
	if !ok {
		return
	}
	defer file.Close()

	view, err := c.attachService.UploadOrgAttachment(req)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, view, "上传成功")
}

// ListOrgAttachments 查询机构附件列表
func (c *AttachmentController) ListOrgAttachments(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	views, err := c.attachService.ListOrgAttachments(id)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	Success(ctx, views)
}

// DeleteOrgAttachment 删除机构附件
func (c *AttachmentController) DeleteOrgAttachment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.attachService.DeleteOrgAttachment(id); err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, nil, "删除成功")
}

// UploadEmpAttachment 上传员工附件
func (c *AttachmentController) UploadEmpAttachment(ctx *gin.Context) {
	req, file, ok := buildUploadRequest(ctx, "empId")
	if !ok {
		return
	}
	defer file.Close()

	view, err := c.attachService.UploadEmpAttachment(req)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, view, "上传成功")
}

// ListEmpAttachments 查询员工附件列表
func (c *AttachmentController) ListEmpAttachments(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	views, err := c.attachService.ListEmpAttachments(id)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	Success(ctx, views)
}

// DeleteEmpAttachment 删除员工附件
func (c *AttachmentController) DeleteEmpAttachment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.attachService.DeleteEmpAttachment(id); err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, nil, "删除成功")
}
